package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	// Use a unique var name that definitely doesn't exist
	// t.Setenv cannot truly unset, so we use a name we know is never set
	content, missing := substituteEnvVars("value = ${VIDPLAY_TEST_NONEXISTENT_VAR_12345}")
	if content != "value = ${VIDPLAY_TEST_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "VIDPLAY_TEST_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [VIDPLAY_TEST_NONEXISTENT_VAR_12345], got %v", missing)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	// Empty string should trigger default (same as unset for :- syntax)
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("value = ${UNSET_VAR_DEFAULT:-default_value}")
	if content != "value = default_value" {
		t.Errorf("expected 'value = default_value', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars with default, got %v", missing)
	}
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, missing := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	if content != "value = from_env" {
		t.Errorf("expected 'value = from_env', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	// Empty string should trigger :? error (same as unset)
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?catalog path is required}")
	if content != "value = ${REQUIRED_VAR_TEST:?catalog path is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "REQUIRED_VAR_TEST: catalog path is required" {
		t.Errorf("expected error message, got %v", missing)
	}
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("VAR1_MULTI", "one")
	// VAR2_MULTI_NONEXISTENT is never set - truly missing
	t.Setenv("VAR3_MULTI", "")

	content, missing := substituteEnvVars("${VAR1_MULTI} ${VIDPLAY_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}")
	if content != "one ${VIDPLAY_VAR2_NONEXISTENT} three" {
		t.Errorf("expected 'one ${VIDPLAY_VAR2_NONEXISTENT} three', got %q", content)
	}
	if len(missing) != 1 || missing[0] != "VIDPLAY_VAR2_NONEXISTENT" {
		t.Errorf("expected [VIDPLAY_VAR2_NONEXISTENT], got %v", missing)
	}
}

func TestSubstituteEnvVars_EmptyDefault(t *testing.T) {
	t.Setenv("EMPTY_DEFAULT_VAR", "")

	content, missing := substituteEnvVars(`path = "${EMPTY_DEFAULT_VAR:-}"`)
	if content != `path = ""` {
		t.Errorf(`expected 'path = ""', got %q`, content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_EmptyRequiredPlainForm(t *testing.T) {
	// Plain ${VAR} only fails when unset; an empty value is substituted.
	t.Setenv("EMPTY_PLAIN_VAR", "")

	content, missing := substituteEnvVars("value = '${EMPTY_PLAIN_VAR}'")
	if content != "value = ''" {
		t.Errorf("expected empty substitution, got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Comments(t *testing.T) {
	t.Setenv("COMMENT_TEST_VAR", "on")

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"full line comment", "# use ${VIDPLAY_TEST_UNSET_IN_COMMENT}", "# use ${VIDPLAY_TEST_UNSET_IN_COMMENT}"},
		{"required form in comment", "#   ${VAR:?message}", "#   ${VAR:?message}"},
		{"trailing comment", `a = "${COMMENT_TEST_VAR}" # was ${VIDPLAY_TEST_UNSET_IN_COMMENT}`, `a = "on" # was ${VIDPLAY_TEST_UNSET_IN_COMMENT}`},
		{"hash inside double quotes", `a = "x#${COMMENT_TEST_VAR}"`, `a = "x#on"`},
		{"hash inside single quotes", `a = 'x#${COMMENT_TEST_VAR}'`, `a = 'x#on'`},
		{"escaped quote", `a = "\"#${COMMENT_TEST_VAR}"`, `a = "\"#on"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, missing := substituteEnvVars(tt.content)
			if content != tt.want {
				t.Errorf("got %q, want %q", content, tt.want)
			}
			if len(missing) != 0 {
				t.Errorf("expected no missing vars, got %v", missing)
			}
		})
	}
}
