package notify

import (
	"fmt"

	"github.com/itm-clinic/clinic-client/client"
)

const (
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m" // Bright black, often appears as gray

	RedInverse    = "\033[7;31m"
	YellowInverse = "\033[7;33m"

	ResetColor = "\033[0m" // Reset to default color
)

var variantColors = map[client.Variant]string{
	client.VariantDefault:     Green,
	client.VariantDestructive: RedInverse,
}

// MethodColors colours HTTP methods in CLI output.
var MethodColors = map[string]string{
	"GET":    Green,
	"POST":   Blue,
	"PUT":    Cyan,
	"DELETE": Yellow,
	"PATCH":  Magenta,
}

// MethodLabel pads method to a fixed width, coloured when colour is set.
func MethodLabel(method string, colour bool) string {
	padded := fmt.Sprintf(" %-7s", method)
	if !colour {
		return padded
	}
	if c, ok := MethodColors[method]; ok {
		return c + padded + ResetColor
	}
	return Gray + padded + ResetColor
}
