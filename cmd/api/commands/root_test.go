package commands

import (
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()

	for _, name := range []string{"serve", "init-tables"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected %s subcommand, got %v %v", name, cmd, err)
		}
	}

	initTables, _, _ := root.Find([]string{"init-tables"})
	if initTables.Flags().Lookup("wait") == nil {
		t.Fatalf("expected --wait flag on init-tables")
	}
}
