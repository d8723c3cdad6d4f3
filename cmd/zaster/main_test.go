package main

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/zaster/cli"
)

func TestBuildVersion(t *testing.T) {
	version, commit := cli.Version, cli.CommitSHA
	t.Cleanup(func() { cli.Version, cli.CommitSHA = version, commit })

	cli.Version, cli.CommitSHA = "", ""
	assert.Equal(t, "dev", buildVersion())

	cli.Version = "1.2.0"
	assert.Equal(t, "1.2.0", buildVersion())

	cli.CommitSHA = "abc123"
	assert.Equal(t, "1.2.0 (abc123)", buildVersion())
}
