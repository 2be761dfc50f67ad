package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/julianstephens/frame/internal/backup"
	"github.com/julianstephens/frame/internal/logger"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Create a backup of the state file."`
	List    BackupListCmd    `cmd:"" help:"List available backups, newest first."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the state file from a backup."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}

	logger.Info("backup created", "path", path)
	fmt.Printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Backups in %s:\n\n", mgr.GetBackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %6d bytes\n",
			b.Timestamp.Format("2006-01-02 15:04:05"), b.Path, b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	Backup string `arg:"" help:"Path to the backup file to restore."`
	Yes    bool   `help:"Skip confirmation prompt." short:"y"`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Restore from backup?").
			Description("The current state file is backed up first, then overwritten.").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Restore cancelled.")
			return nil
		}
	}

	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if err := mgr.RestoreBackup(c.Backup); err != nil {
		return err
	}

	logger.Info("backup restored", "path", c.Backup)
	fmt.Printf("Restored state from %s\n", c.Backup)
	return nil
}
