package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"login", "logout", "register",
		"accounts", "budgets", "bills", "goals",
		"transactions", "notifications",
	} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestLoginRejectsInvalidEmailBeforeAnyRequest(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"login", "--email", "not-an-email", "--password", "x"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestTransactionsListRequiresDateFlags(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"transactions", "list"})

	err := root.Execute()
	assert.Error(t, err)
}
