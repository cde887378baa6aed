package abbrev

import (
	"reflect"
	"testing"
)

func TestShortest(t *testing.T) {
	tests := []struct {
		name  string
		abbrs [][]string
		want  []string
	}{
		{"empty", nil, nil},
		{"single", [][]string{{"a", "b"}}, []string{"a", "b"}},
		{"picks shortest", [][]string{{"a", "b", "c"}, {"a", "e"}}, []string{"a", "e"}},
		{"tie keeps first", [][]string{{"a", "x"}, {"a", "y"}}, []string{"a", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Shortest(tt.abbrs); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Shortest() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCommonDir(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{
			name: "cove paths",
			paths: []string{
				"/home/user1/tmp/coverage/test",
				"/home/user1/tmp/covert/operator",
				"/home/user1/tmp/coven/members",
			},
			want: "/home/user1/tmp",
		},
		{
			name:  "shallower divergence wins",
			paths: []string{"/srv/a/b/c", "/srv/a/b/d", "/srv/x"},
			want:  "/srv",
		},
		{
			name:  "single path",
			paths: []string{"/var/log/syslog"},
			want:  "/var/log",
		},
		{
			name:  "relative paths diverge at top",
			paths: []string{"a/x", "b/y"},
			want:  "",
		},
		{
			name:  "no paths",
			paths: nil,
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CommonDir(tt.paths, "/"); got != tt.want {
				t.Errorf("CommonDir() = %q, want %q", got, tt.want)
			}
		})
	}
}
