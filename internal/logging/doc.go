// Package logger provides leveled console logging for CLI commands.
//
// Output is controlled by two flags:
//
//   - --verbose: shows info and warning messages
//   - --debug: shows everything, including debug details
//
// Without flags only user-facing warnings and errors are printed.
//
// # Log Methods
//
//	Logger.Infof()          // --verbose or --debug
//	Logger.Debugf()         // --debug only
//	Logger.Warnf()          // --verbose or --debug
//	Logger.WarnfUser()      // always
//	Logger.Errorf()         // always
//	Logger.ErrorfAndReturn() // builds an error, logged with --debug
//
// Library packages (envfile, keys, filemode) never log; they return errors
// and leave reporting to the command layer.
package logger
