// Package ui provides semantic text formatting for CLI output.
//
// Each formatter names the kind of content it decorates rather than a color.
// When colors are available the text is colorized; when NO_COLOR is set or
// the terminal cannot show colors, a plain decoration is used instead.
//
//	ui.Code.Sprint("saas-template-companion make keys") // `backticks` without color
//	ui.Path.Sprint(".env")                               // undecorated
//	ui.EnvName.Sprint("NEXTAUTH_SECRET")                 // undecorated
//
// The status marks (SuccessMark, ErrorMark, WarningMark, InfoMark) prefix
// final messages so every command reads the same way.
package ui
