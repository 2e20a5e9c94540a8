package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-a", "http://api", "-x", "1"}, []string{"-a"}, []string{"-a", "http://api"}},
		{"equals form", []string{"-a=http://api", "-x=1"}, []string{"-a"}, []string{"-a=http://api"}},
		{"unknown only", []string{"-x", "1", "positional"}, []string{"-a"}, []string{}},
		{"trailing flag without value", []string{"-v"}, []string{"-v"}, []string{"-v"}},
		{"next token is a flag", []string{"-v", "-a", "http://api"}, []string{"-v", "-a"}, []string{"-v", "-a", "http://api"}},
		{"order preserved", []string{"-d", "s.db", "-c", "c.json", "-a", "u"}, []string{"-a", "-d"}, []string{"-d", "s.db", "-a", "u"}},
		{"empty", nil, []string{"-a"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigPathFrom(t *testing.T) {
	assert.Equal(t, "conf.json", configPathFrom([]string{"-a", "http://x", "-c", "conf.json"}))
	assert.Equal(t, "long.json", configPathFrom([]string{"-config=long.json"}))
	assert.Equal(t, "", configPathFrom([]string{"-a", "http://x"}))
}
