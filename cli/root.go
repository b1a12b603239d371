package cli

import (
	"errors"

	"hourlogger/config"
	"hourlogger/database"
	"hourlogger/tracker"

	"github.com/spf13/cobra"
)

// app - общее состояние команд: конфигурация, база и сервис учёта
type app struct {
	cfg    *config.Config
	dbPath string
	db     *database.DB
	svc    *tracker.Service
}

// Execute запускает CLI и закрывает базу при любом исходе команды
func Execute() error {
	cmd, a := newRootCommand()
	defer a.close()
	return cmd.Execute()
}

// newRootCommand создаёт корневую команду hourlogger
func newRootCommand() (*cobra.Command, *app) {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "hourlogger",
		Short:         "Employee hour logger",
		Long:          "Tracks employee check-ins and check-outs and exports the daily log.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsStore(cmd) {
				return nil
			}
			return a.open()
		},
	}

	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to the SQLite database (overrides DB_PATH)")

	cmd.AddCommand(newBotCommand(a))
	cmd.AddCommand(newEmployeeCommand(a))
	cmd.AddCommand(newCheckInCommand(a))
	cmd.AddCommand(newCheckOutCommand(a))
	cmd.AddCommand(newStatusCommand(a))
	cmd.AddCommand(newLogCommand(a))
	cmd.AddCommand(newExportCommand(a))
	cmd.AddCommand(newClearCommand(a))
	cmd.AddCommand(newImportCommand(a))

	return cmd, a
}

// needsStore - справка и автодополнение работают без базы и не создают файл
func needsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}
	return true
}

func (a *app) open() error {
	a.cfg = config.Load()
	if a.dbPath != "" {
		a.cfg.DBPath = a.dbPath
	}

	db, err := database.NewDB(a.cfg.DBPath)
	if err != nil {
		return err
	}

	svc := tracker.NewService(database.NewRepository(db))
	if err := svc.Load(); err != nil {
		db.Close()
		return err
	}

	a.db = db
	a.svc = svc
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

// userError превращает ошибку сервиса в текст для пользователя
func userError(err error) error {
	return errors.New(tracker.MessageFor(err).Text)
}
