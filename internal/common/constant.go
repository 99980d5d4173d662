// Package common contains shared constants and sentinel errors used across
// the creditapp client components.
package common

// Demo account identity. The backend keeps one reserved demo user; a session
// with DemoEmail bypasses the PIN gate entirely.
const (
	DemoUsername = "mobile_demo"
	DemoEmail    = "demo@fintechdocs.ru"
	DemoPassword = "gYJDFP4c"
)

// PinLength is the required length of the local passcode, digits only.
const PinLength = 4
