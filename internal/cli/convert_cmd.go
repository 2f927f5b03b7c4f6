// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// convert_cmd.go - the convert command.
//
// Command: convert [FILE]
// Short:   Convert JSON to YAML or YAML to JSON
// Aliases: c
//
// Examples:
//   fmtkit convert data.json              Print data.json as YAML
//   fmtkit convert config.yaml -o out.json
//   cat data.json | fmtkit convert        Read stdin, detect the format
//   fmtkit convert --from yaml notes.txt  Skip detection
//
// Flags:
//   --from, -f FORMAT   Input format: json, yaml or auto (default auto)
//   --out, -o FILE      Write the result to FILE instead of stdout
//   --json              Output in JSON format
//   --quiet, -q         No status line on stderr

package cli

// HandleConvert handles "fmtkit convert".
func HandleConvert(env *Env, args Args) error {
	input, err := readInput(env, args.File)
	if err != nil {
		return err
	}

	data, err := convertDocument(env, args, input)
	if err != nil {
		return err
	}
	if args.JSON {
		return NewJSONResponse("convert", data).Print(env.Stdout)
	}
	return nil
}

// convertDocument converts input and writes it to --out or stdout. In JSON
// mode without --out the output is returned in the data instead.
func convertDocument(env *Env, args Args, input string) (ConvertData, error) {
	from, auto := resolveFrom(env, args.From, args.File)
	ctrl, err := newController(env, from, !args.Quiet && !args.JSON)
	if err != nil {
		return ConvertData{}, err
	}

	var data ConvertData
	if auto {
		_, data.Detected = ctrl.AutoDetect(input).Format()
	}
	from = ctrl.Format()
	data.From = from.String()
	data.To = from.Other().String()
	action := data.From + " -> " + data.To

	conv := ctrl.Convert(input)
	switch {
	case conv.Skipped:
		return data, NewCommandError("convert", action, "nothing to convert", conv.Err)
	case conv.Err != nil:
		return data, NewCommandError("convert", action, "input is not valid "+from.Label(), conv.Err)
	}

	if args.Out != "" && args.Out != "-" {
		if err := writeOutput(env, args.Out, conv.Output); err != nil {
			return data, NewCommandError("convert", action, "cannot write output", err)
		}
		data.OutFile = args.Out
		return data, nil
	}
	if args.JSON {
		data.Output = conv.Output
		return data, nil
	}
	return data, writeOutput(env, "", conv.Output)
}

