package flagx

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "separate value",
			args:         []string{"-d", "session.db", "-a", "localhost"},
			allowedFlags: []string{"-d"},
			want:         []string{"-d", "session.db"},
		},
		{
			name:         "equals form",
			args:         []string{"--config=alt.json", "-a", "localhost"},
			allowedFlags: []string{"-c", "--config"},
			want:         []string{"--config=alt.json"},
		},
		{
			name:         "unknown flags and positionals ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-m"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m"},
		},
		{
			name:         "next dash token is not a value",
			args:         []string{"-t", "-f", "3"},
			allowedFlags: []string{"-t", "-f"},
			want:         []string{"-t", "-f", "3"},
		},
		{
			name:         "value that looks like a flag in equals form",
			args:         []string{"--config=--weird.json"},
			allowedFlags: []string{"--config"},
			want:         []string{"--config=--weird.json"},
		},
		{
			name:         "repeated flag keeps order",
			args:         []string{"-m", "8", "-m", "12"},
			allowedFlags: []string{"-m"},
			want:         []string{"-m", "8", "-m", "12"},
		},
		{
			name:         "empty",
			args:         []string{},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowedFlags))
		})
	}
}

func TestParseOwn_IgnoresForeignFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	addr := fs.String("a", "", "")
	maxLen := fs.Int("m", 10, "")

	err := ParseOwn(fs, []string{"-c", "cfg.json", "-a", "127.0.0.1:1", "--m=12", "-z"})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:1", *addr)
	assert.Equal(t, 12, *maxLen)
}

func TestParseOwn_ReportsBadValue(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("m", 10, "")

	assert.Error(t, ParseOwn(fs, []string{"-m", "ten"}))
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/path/short.json", ConfigPath([]string{"-c", "/path/short.json"}))
	assert.Equal(t, "/path/long.json", ConfigPath([]string{"-a", "x", "-config", "/path/long.json"}))
	assert.Equal(t, "/path/2.json", ConfigPath([]string{"-c", "/path/1.json", "-config", "/path/2.json"}))
	assert.Empty(t, ConfigPath([]string{"-x", "1"}))
}
