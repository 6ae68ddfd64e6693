package credentials

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

func encryptFor(t *testing.T, key []byte, plaintext string) *string {
	t.Helper()
	ct, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	return &ct
}

func TestResolvePriority(t *testing.T) {
	key := mustKey(t)
	r := NewResolver(key, "platform-key", nil)

	project := &entity.Project{ID: uuid.New(), APIKeyCiphertext: encryptFor(t, key, "project-key")}
	workspace := &entity.Workspace{ID: uuid.New(), APIKeyCiphertext: encryptFor(t, key, "workspace-key")}

	// Project override wins.
	got, source, err := r.Resolve(project, workspace)
	if err != nil || got != "project-key" || source != "project" {
		t.Errorf("Resolve = %q/%q/%v, want project-key/project", got, source, err)
	}

	// Without a project override, workspace wins.
	got, source, err = r.Resolve(&entity.Project{ID: uuid.New()}, workspace)
	if err != nil || got != "workspace-key" || source != "workspace" {
		t.Errorf("Resolve = %q/%q/%v, want workspace-key/workspace", got, source, err)
	}

	// Neither override: platform default.
	got, source, err = r.Resolve(&entity.Project{}, &entity.Workspace{})
	if err != nil || got != "platform-key" || source != "platform" {
		t.Errorf("Resolve = %q/%q/%v, want platform-key/platform", got, source, err)
	}
}

func TestResolveNoCredentials(t *testing.T) {
	r := NewResolver(mustKey(t), "", nil)
	_, _, err := r.Resolve(&entity.Project{}, &entity.Workspace{})
	if !errors.Is(err, common.ErrNoCredentials) {
		t.Errorf("expected ErrNoCredentials, got %v", err)
	}
}

func TestResolveCorruptOverrideIsFatalNotSkipped(t *testing.T) {
	key := mustKey(t)
	r := NewResolver(key, "platform-key", nil)

	bad := "not-a-valid-ciphertext"
	project := &entity.Project{ID: uuid.New(), APIKeyCiphertext: &bad}
	workspace := &entity.Workspace{ID: uuid.New(), APIKeyCiphertext: encryptFor(t, key, "workspace-key")}

	// Even with valid keys further down the chain, a corrupt project
	// override must fail resolution.
	_, _, err := r.Resolve(project, workspace)
	if !errors.Is(err, common.ErrCorruptCredential) {
		t.Errorf("expected ErrCorruptCredential, got %v", err)
	}

	// Same at the workspace level.
	workspace.APIKeyCiphertext = &bad
	_, _, err = r.Resolve(&entity.Project{}, workspace)
	if !errors.Is(err, common.ErrCorruptCredential) {
		t.Errorf("expected ErrCorruptCredential at workspace level, got %v", err)
	}
}

func TestResolveEmptyCiphertextFallsThrough(t *testing.T) {
	key := mustKey(t)
	r := NewResolver(key, "platform-key", nil)

	empty := ""
	project := &entity.Project{APIKeyCiphertext: &empty}
	got, source, err := r.Resolve(project, nil)
	if err != nil || got != "platform-key" || source != "platform" {
		t.Errorf("empty ciphertext should fall through, got %q/%q/%v", got, source, err)
	}
}
