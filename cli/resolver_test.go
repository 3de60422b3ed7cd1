package cli

import (
	"maps"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestResolve_Flatten(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want config
	}{
		{
			name: "empty",
			doc:  "",
			want: config{},
		},
		{
			name: "malformed",
			doc:  "log-level: [debug\n",
			want: config{},
		},
		{
			name: "hyphenated",
			doc:  "log-level: debug\nlog-pretty: false\n",
			want: config{"log-level": "debug", "log-pretty": false},
		},
		{
			name: "underscored",
			doc:  "log_level: warn\n",
			want: config{"log-level": "warn"},
		},
		{
			name: "nested",
			doc:  "log:\n  format: json\n  time_layout: none\npprof:\n  mode: cpu\n",
			want: config{
				"log-format":      "json",
				"log-time-layout": "none",
				"pprof-mode":      "cpu",
			},
		},
		{
			name: "numbers",
			doc:  "rows: 8\nscale: 1.5\n",
			want: config{"rows": "8", "scale": "1.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := resolve(strings.NewReader(tt.doc))
			if err != nil {
				t.Fatalf("resolve() error = %v", err)
			}

			got, ok := r.(config)
			if !ok {
				t.Fatalf("resolve() returned %T, want config", r)
			}

			if !maps.Equal(got, tt.want) {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfig_Resolve(t *testing.T) {
	cfg := config{"log-level": "debug"}

	tests := []struct {
		flag string
		want any
	}{
		{"log-level", "debug"},
		{"log-format", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			flag := &kong.Flag{Value: &kong.Value{Name: tt.flag}}

			got, err := cfg.Resolve(nil, nil, flag)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}

			if got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}

	if err := cfg.Validate(nil); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
