package main

import "testing"

func TestCanRunWithoutStore(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no args",
			args: nil,
			want: false,
		},
		{
			name: "help flag",
			args: []string{"--help"},
			want: true,
		},
		{
			name: "help shorthand on subcommand",
			args: []string{"list", "-h"},
			want: true,
		},
		{
			name: "version flag",
			args: []string{"--version"},
			want: true,
		},
		{
			name: "help subcommand",
			args: []string{"help", "new"},
			want: true,
		},
		{
			name: "regular command",
			args: []string{"list"},
			want: false,
		},
		{
			name: "help as argument value",
			args: []string{"new", "--title", "help"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canRunWithoutStore(tt.args); got != tt.want {
				t.Fatalf("canRunWithoutStore(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}
