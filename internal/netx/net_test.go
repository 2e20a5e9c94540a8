package netx

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/apiclient/internal/common"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain", in: "http://localhost:3001", want: "http://localhost:3001"},
		{name: "trailing slash", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "with prefix path", in: " https://example.com/v1/ ", want: "https://example.com/v1"},
		{name: "empty", in: "", wantErr: true},
		{name: "no scheme", in: "localhost:3001", wantErr: true},
		{name: "ftp scheme", in: "ftp://example.com", wantErr: true},
		{name: "no host", in: "http://", wantErr: true},
		{name: "query", in: "http://example.com?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.in)
			if tt.wantErr {
				if !errors.Is(err, common.ErrInvalidBaseURL) {
					t.Fatalf("err = %v, want ErrInvalidBaseURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinPath(t *testing.T) {
	if got := JoinPath("http://h", "/health"); got != "http://h/health" {
		t.Fatalf("got %q", got)
	}
	if got := JoinPath("http://h", "api/status"); got != "http://h/api/status" {
		t.Fatalf("got %q", got)
	}
}
