package highlight

import "errors"

// ErrUnknownTheme indicates a theme name that matches no registered style.
var ErrUnknownTheme = errors.New("unknown theme")
