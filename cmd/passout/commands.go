// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/passout/internal/config"
)

// command is one parsed invocation. Each cobra command builds exactly one
// variant, and [cli.dispatch] handles every variant.
type command interface {
	isCommand()
}

type (
	listCommand struct {
		tree   bool
		asJSON bool
	}
	addCommand     struct{ name string }
	removeCommand  struct{ name string }
	stdoutCommand  struct{ name string }
	clipCommand    struct{ name string }
	clearCommand   struct{}
	browseCommand  struct{}
	configCommand  struct{}
	versionCommand struct{}
)

func (listCommand) isCommand()    {}
func (addCommand) isCommand()     {}
func (removeCommand) isCommand()  {}
func (stdoutCommand) isCommand()  {}
func (clipCommand) isCommand()    {}
func (clearCommand) isCommand()   {}
func (browseCommand) isCommand()  {}
func (configCommand) isCommand()  {}
func (versionCommand) isCommand() {}

// newRootCmd builds the command tree. It is called once per process and
// once per test for isolation.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "passout",
		Short:         "Simple password manager built on gpg",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)
	c.flags = config.BindFlags(root.PersistentFlags())

	nameCmd := func(use, short string, build func(name string) command) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <name>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.run(cmd.Context(), build(args[0]))
			},
		}
	}
	plainCmd := func(use, short string, variant command) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return c.run(cmd.Context(), variant)
			},
		}
	}

	var ls listCommand
	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List passwords stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.run(cmd.Context(), ls)
		},
	}
	lsCmd.Flags().BoolVar(&ls.tree, "tree", false, "show names grouped on \"__\"")
	lsCmd.Flags().BoolVar(&ls.asJSON, "json", false, "print the grouped names as nested JSON")

	root.AddCommand(
		lsCmd,
		nameCmd("add", "Add a new password", func(name string) command { return addCommand{name: name} }),
		nameCmd("rm", "Remove a stored password", func(name string) command { return removeCommand{name: name} }),
		nameCmd("stdout", "Print password to stdout", func(name string) command { return stdoutCommand{name: name} }),
		nameCmd("clip", "Put the password in the X clipboard", func(name string) command { return clipCommand{name: name} }),
		plainCmd("clear", "Wipe the clipboard now", clearCommand{}),
		plainCmd("browse", "Pick a password from a menu and clip it", browseCommand{}),
		plainCmd("config", "Print the current passout configuration", configCommand{}),
		plainCmd("version", "Show version and exit", versionCommand{}),
	)

	return root
}
