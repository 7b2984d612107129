package klondike

import "errors"

// Engine errors. All of them are recoverable and leave the game unchanged.
var (
	ErrInvalidPile        = errors.New("klondike: invalid pile")
	ErrNoOpMove           = errors.New("klondike: source and destination are the same pile")
	ErrNoMovableCard      = errors.New("klondike: no movable card")
	ErrIllegalMove        = errors.New("klondike: illegal move")
	ErrEmptyStockAndWaste = errors.New("klondike: stock and waste are empty")
	ErrNothingToUndo      = errors.New("klondike: nothing to undo")
	ErrInvalidDrawCount   = errors.New("klondike: draw count must be 1 or 3")
)
