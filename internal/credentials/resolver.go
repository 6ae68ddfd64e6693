package credentials

import (
	"fmt"
	"log/slog"

	"github.com/veridoc-ai/veridoc/internal/common"
	"github.com/veridoc-ai/veridoc/internal/entity"
)

// Resolver picks the extraction API key for a run: project-level override,
// then workspace-level override, then the platform default. Resolved once
// per run, before any extraction call.
type Resolver struct {
	masterKey   []byte
	platformKey string
	log         *slog.Logger
}

func NewResolver(masterKey []byte, platformKey string, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{masterKey: masterKey, platformKey: platformKey, log: log}
}

// Resolve returns the API key and its source level. A decryption failure at
// any override level is fatal (ErrCorruptCredential), never silently
// skipped; when no key resolves at any level the error is ErrNoCredentials.
func (r *Resolver) Resolve(project *entity.Project, workspace *entity.Workspace) (key, source string, err error) {
	if project != nil && project.APIKeyCiphertext != nil && *project.APIKeyCiphertext != "" {
		plain, err := Decrypt(r.masterKey, *project.APIKeyCiphertext)
		if err != nil {
			r.log.Error("credentials.decrypt_failed", "level", "project", "project_id", project.ID, "error", err)
			return "", "", err
		}
		return plain, "project", nil
	}

	if workspace != nil && workspace.APIKeyCiphertext != nil && *workspace.APIKeyCiphertext != "" {
		plain, err := Decrypt(r.masterKey, *workspace.APIKeyCiphertext)
		if err != nil {
			r.log.Error("credentials.decrypt_failed", "level", "workspace", "workspace_id", workspace.ID, "error", err)
			return "", "", err
		}
		return plain, "workspace", nil
	}

	if r.platformKey != "" {
		return r.platformKey, "platform", nil
	}

	return "", "", fmt.Errorf("%w: no key at project, workspace, or platform level", common.ErrNoCredentials)
}
