// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the batch commands of fmtkit.
//
// # Key Types
//
//   - Command: enumeration of the available commands
//   - Args: parsed global and command-specific flags
//   - Env: the streams, config and logger a command runs with
//   - JSONResponse: the --json output envelope
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if cmd == cli.CmdTUI {
//	    // start the interactive tools
//	}
//	err = cli.Run(cli.NewEnv(ctx, cfg, logger), cmd, args)
//	os.Exit(cli.GetExitCode(err))
//
// # Commands
//
//   - convert: JSON to YAML and back
//   - validate: well-formedness check with a short summary
//   - detect: print the detected format
//   - watch: reconvert a file on every save
//   - config: show, path, init, get, set
//   - version, help
//
// # Exit Codes
//
//	0  success
//	1  general error
//	2  usage error or empty input
//	3  configuration error
//	7  file or key not found
//	10 input is not valid JSON or YAML
package cli
