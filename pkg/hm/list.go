package hm

// HookInfo describes one configured hook for display.
type HookInfo struct {
	ID       string
	Name     string
	Repo     string
	Rev      string
	Language string
	Stages   []string
}

// ListHooks returns the configured hooks in configuration order.
func (h *realHM) ListHooks() ([]HookInfo, error) {
	root, err := h.repositoryRoot()
	if err != nil {
		return nil, err
	}

	cfg, _, err := h.loadHookSet(root)
	if err != nil {
		return nil, err
	}

	var hooks []HookInfo
	for _, repo := range cfg.Repos {
		for _, hook := range repo.Hooks {
			stages := hook.Stages
			if len(stages) == 0 {
				stages = cfg.DefaultStages
			}
			hooks = append(hooks, HookInfo{
				ID:       hook.ID,
				Name:     hook.DisplayName(),
				Repo:     repo.Repo,
				Rev:      repo.Rev,
				Language: hook.LanguageOrDefault(),
				Stages:   stages,
			})
		}
	}
	return hooks, nil
}
