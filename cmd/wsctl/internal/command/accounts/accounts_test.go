// Copyright 2026 Peter Edge
//
// All rights reserved.

package accounts

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestFlagsShowZeroByDefault(t *testing.T) {
	t.Parallel()
	for _, test := range []struct {
		args []string
		want bool
	}{
		{args: nil, want: true},
		{args: []string{"--show-zero"}, want: true},
		{args: []string{"--show-zero=false"}, want: false},
	} {
		flags := newFlags()
		flagSet := pflag.NewFlagSet("accounts", pflag.ContinueOnError)
		flags.Bind(flagSet)
		require.NoError(t, flagSet.Parse(test.args))
		require.Equal(t, test.want, flags.ShowZero, test.args)
		require.False(t, flags.LiquidOnly)
		require.Equal(t, "table", flags.Format)
	}
}
