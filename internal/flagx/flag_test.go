package flagx

import (
	"reflect"
	"testing"
)

func TestFilterArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value",
			args:    []string{"-a", ":5000", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":5000"},
		},
		{
			name:    "combined value",
			args:    []string{"--config=conf.json", "-a", ":5000"},
			allowed: []string{"--config"},
			want:    []string{"--config=conf.json"},
		},
		{
			name:    "flag without value followed by another flag",
			args:    []string{"-v", "-a", ":5000"},
			allowed: []string{"-v", "-a"},
			want:    []string{"-v", "-a", ":5000"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", ":5000"},
			allowed: []string{"-b"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowed)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
