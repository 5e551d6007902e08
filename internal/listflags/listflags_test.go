package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddAllFlag(t *testing.T) {
	var all bool
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, &all)

	if err := cmd.ParseFlags([]string{"-a"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !all {
		t.Fatal("expected -a to set the target")
	}
}

func TestAddAllFlagWithoutTarget(t *testing.T) {
	cmd := &cobra.Command{Use: "list"}
	AddAllFlag(cmd, nil)

	if cmd.Flags().Lookup("all") == nil {
		t.Fatal("expected --all flag to be registered")
	}
}

func TestAddOutputFlags(t *testing.T) {
	var asJSON, asYAML bool
	cmd := &cobra.Command{Use: "list"}
	AddOutputFlags(cmd, &asJSON, &asYAML)

	if err := cmd.ParseFlags([]string{"--yaml"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if asJSON || !asYAML {
		t.Fatalf("expected only yaml to be set, got json=%v yaml=%v", asJSON, asYAML)
	}
}
