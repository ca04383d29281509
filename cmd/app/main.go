package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akyairhashvil/cantieri/internal/config"
	"github.com/akyairhashvil/cantieri/internal/database"
	"github.com/akyairhashvil/cantieri/internal/store"
	"github.com/akyairhashvil/cantieri/internal/transfer"
	"github.com/akyairhashvil/cantieri/internal/tui"
	"github.com/akyairhashvil/cantieri/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

const usage = `uso:
  app                      avvia l'interfaccia
  app export-vault [FILE]  esporta tutti i dati in un file JSON
  app import-vault FILE    sostituisce i dati con quelli del file`

// promptForKey reads a passphrase without echo. Tests replace it.
var promptForKey = func(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg, err := config.Load(os.Getenv("CANTIERI_CONFIG"))
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	logger, closer, err := util.NewLogger(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	if len(args) == 0 {
		return runTUI(ctx, cfg)
	}
	switch args[0] {
	case "export-vault":
		path := ""
		if len(args) > 1 {
			path = args[1]
		}
		return exportVault(ctx, cfg, path, out)
	case "import-vault":
		if len(args) < 2 {
			return errors.New(usage)
		}
		return importVault(ctx, cfg, args[1], out)
	case "-h", "--help", "help":
		fmt.Fprintln(out, usage)
		return nil
	}
	return fmt.Errorf("comando sconosciuto %q\n%s", args[0], usage)
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	st, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	theme := cfg.Theme
	var p tui.Persister
	if db != nil {
		defer db.Close()
		p = db
		if saved, ok := db.GetSetting(ctx, database.SettingTheme); ok {
			theme = saved
		}
	}
	slog.Info("starting", "db", cfg.DatabasePath, "session_only", cfg.SessionOnly, "jobs", len(st.Jobs()))

	model := tui.NewMainModel(ctx, st, p, tui.Options{ReportsDir: cfg.ReportsDir, Theme: theme})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}

// openStore loads the saved session, or the demo data on first start. The
// returned database is nil in session-only mode.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, *database.Database, error) {
	st := store.New()
	today := time.Now().Format(config.DateLayout)
	if cfg.SessionOnly {
		if cfg.SeedDemo {
			st.SeedDemo(today)
		}
		return st, nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return nil, nil, err
	}
	db, err := database.Open(ctx, cfg.DatabasePath, cfg.DBTimeout)
	if err != nil {
		return nil, nil, err
	}
	snap, ok, err := db.LoadSnapshot(ctx)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	switch {
	case ok:
		st.Restore(snap)
	case cfg.SeedDemo:
		st.SeedDemo(today)
		if err := db.SaveSnapshot(ctx, st.Snapshot()); err != nil {
			db.Close()
			return nil, nil, err
		}
	}
	return st, db, nil
}

func exportVault(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	st, db, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}
	if path == "" {
		path = filepath.Join(cfg.ReportsDir, fmt.Sprintf(config.VaultFileName, time.Now().Format(config.DateLayout)))
	}

	pass, err := exportPassphrase()
	if err != nil {
		return err
	}
	payload, err := transfer.ExportVault(st.Snapshot(), pass)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return err
	}
	slog.Info("vault exported", "path", path, "encrypted", pass != "")
	fmt.Fprintf(out, "Esportazione completata: %s\n", path)
	return nil
}

// exportPassphrase takes the passphrase from CANTIERI_VAULT_KEY or asks for
// it twice. Empty means a plain export.
func exportPassphrase() (string, error) {
	if key := strings.TrimSpace(os.Getenv("CANTIERI_VAULT_KEY")); key != "" {
		return key, util.ValidatePassphrase(key)
	}
	for tries := 0; tries < config.MaxPassphraseAttempts; tries++ {
		pass, err := promptForKey("Passphrase (vuota per nessuna cifratura): ")
		if err != nil {
			return "", err
		}
		if pass == "" {
			return "", nil
		}
		if err := util.ValidatePassphrase(pass); err != nil {
			fmt.Fprintf(os.Stderr, "Passphrase troppo debole: %v\n", err)
			continue
		}
		again, err := promptForKey("Ripeti la passphrase: ")
		if err != nil {
			return "", err
		}
		if again == pass {
			return pass, nil
		}
		fmt.Fprintln(os.Stderr, "Le passphrase non coincidono.")
	}
	return "", errors.New("troppi tentativi di passphrase")
}

func importVault(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	if cfg.SessionOnly {
		return errors.New("import-vault richiede un database: session_only è attivo")
	}
	payload, err := os.ReadFile(util.ExpandUser(path))
	if err != nil {
		return err
	}
	snap, err := decodeVault(ctx, payload)
	if err != nil {
		return err
	}
	if snap.Empty() {
		return errors.New("il file di backup è vuoto: nessun dato importato")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
		return err
	}
	db, err := database.Open(ctx, cfg.DatabasePath, cfg.DBTimeout)
	if err != nil {
		return err
	}
	defer db.Close()
	cur, _, err := db.LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	// Older versions are dropped on save, so the import must supersede
	// whatever is stored.
	snap.Version = cur.Version + 1
	if err := db.SaveSnapshot(ctx, snap); err != nil {
		return err
	}
	slog.Info("vault imported", "path", path, "jobs", len(snap.Jobs))
	fmt.Fprintf(out, "Importazione completata: %d operai, %d mezzi, %d cantieri, %d lavori\n",
		len(snap.Workers), len(snap.Vehicles), len(snap.Sites), len(snap.Jobs))
	return nil
}

func decodeVault(ctx context.Context, payload []byte) (store.Snapshot, error) {
	if !transfer.IsEncrypted(payload) {
		return transfer.ImportVault(ctx, payload, "")
	}
	if key := strings.TrimSpace(os.Getenv("CANTIERI_VAULT_KEY")); key != "" {
		return transfer.ImportVault(ctx, payload, key)
	}
	for tries := 0; tries < config.MaxPassphraseAttempts; tries++ {
		pass, err := promptForKey("Passphrase: ")
		if err != nil {
			return store.Snapshot{}, err
		}
		if pass == "" {
			return store.Snapshot{}, transfer.ErrNeedPassphrase
		}
		snap, err := transfer.ImportVault(ctx, payload, pass)
		if errors.Is(err, transfer.ErrWrongPassphrase) {
			fmt.Fprintln(os.Stderr, "Passphrase errata.")
			continue
		}
		return snap, err
	}
	return store.Snapshot{}, transfer.ErrWrongPassphrase
}
