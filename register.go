package symcore

// Importing each encoder package for its init()-time registration is
// the one place the flat dispatch table gets wired up.
import (
	_ "github.com/uSwapExchange/symcore/internal/datamatrix"
	_ "github.com/uSwapExchange/symcore/internal/dotcode"
	_ "github.com/uSwapExchange/symcore/internal/linear"
	_ "github.com/uSwapExchange/symcore/internal/maxicode"
	_ "github.com/uSwapExchange/symcore/internal/pdf417"
	_ "github.com/uSwapExchange/symcore/internal/qrfamily"
)
