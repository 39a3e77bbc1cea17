package git

import (
	"reflect"
	"testing"
)

func TestParseBranchLines(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{
			name: "plain listing with current marker",
			out:  "* master\n  dev\n  feature/x",
			want: []string{"master", "dev", "feature/x"},
		},
		{
			name: "worktree marker",
			out:  "+ linked\n  master",
			want: []string{"linked", "master"},
		},
		{
			name: "detached head line skipped",
			out:  "* (HEAD detached at 1a2b3c)\n  master",
			want: []string{"master"},
		},
		{
			name: "name-rev offsets stripped",
			out:  "main~3\nrelease^2\n",
			want: []string{"main", "release"},
		},
		{
			name: "undefined discarded",
			out:  "undefined",
			want: nil,
		},
		{
			name: "empty output",
			out:  "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBranchLines(tt.out)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBranchLines(%q) = %v, expected %v", tt.out, got, tt.want)
			}
		})
	}
}
