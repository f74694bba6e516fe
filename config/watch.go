package config

import "github.com/fsnotify/fsnotify"

// Watcher reloads Config and a LanguageServerTable whenever a file in the
// config directory is written or created (grounded on fsnotify usage in
// the pack's vibetunnel/vision3 repos).
type Watcher struct {
	fsw    *fsnotify.Watcher
	onConfig func(*Config)
	onLanguages func(LanguageServerTable)
}

// NewWatcher starts watching the config directory (ConfigDir). A change to
// the config file calls onConfig; a change to any other file in that
// directory is decoded as a language-server table and passed to
// onLanguages. Files outside the config directory, including a
// LanguageServersPath that points elsewhere, are not watched.
// onConfig/onLanguages may be nil.
func NewWatcher(onConfig func(*Config), onLanguages func(LanguageServerTable)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(ConfigDir()); err != nil {
		fsw.Close()
		return nil, err
	}
	w := &Watcher{fsw: fsw, onConfig: onConfig, onLanguages: onLanguages}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.handle(ev.Name)
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handle(name string) {
	switch {
	case name == Path() && w.onConfig != nil:
		if cfg, err := Load(); err == nil {
			w.onConfig(cfg)
		}
	case w.onLanguages != nil:
		if table, err := LoadLanguageServers(name); err == nil {
			w.onLanguages(table)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
