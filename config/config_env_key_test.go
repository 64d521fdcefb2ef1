package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"account": map[string]any{
			"baseUrl":            "https://localhost:7059",
			"insecureSkipVerify": false,
		},
		"devServer": map[string]any{
			"tokenTtl": "1h",
		},
		"storage": map[string]any{
			"path": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "ACCOUNT_BASEURL", want: "account.baseUrl"},
		{envKey: "ACCOUNT_INSECURESKIPVERIFY", want: "account.insecureSkipVerify"},
		{envKey: "DEVSERVER_TOKENTTL", want: "devServer.tokenTtl"},
		{envKey: "STORAGE_PATH", want: "storage.path"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
