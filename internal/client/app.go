package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/mvolkhin/notelock/internal/config"
	"github.com/mvolkhin/notelock/internal/logger"
	"github.com/mvolkhin/notelock/internal/service"
	"github.com/mvolkhin/notelock/models"
)

// App is the interactive terminal client. It drives the sign-in and unlock
// flows, starts the background sync and idle-lock workers, and then runs a
// command loop over the client services.
type App struct {
	services *service.ClientServices
	workers  config.ClientWorkers
	logger   *logger.Logger

	in  *bufio.Scanner
	out io.Writer
}

func NewApp(services *service.ClientServices, workers config.ClientWorkers, log *logger.Logger) *App {
	return &App{
		services: services,
		workers:  workers,
		logger:   log,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) Run() error {
	ctx := context.Background()

	fmt.Fprintln(a.out, titleStyle.Render("notelock"))
	fmt.Fprintln(a.out, hintStyle.Render("end-to-end encrypted notes. Type `help` for commands."))

	if err := a.signIn(ctx); err != nil {
		return err
	}
	if err := a.unlock(ctx); err != nil {
		return err
	}

	// the keypair is needed for sharing; failure is not fatal for local use
	if err := a.services.ProfileService.EnsureProfileKeys(ctx); err != nil {
		fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf("profile keys: %v", err)))
	}

	if err := a.services.SyncService.FullSync(ctx); err != nil {
		fmt.Fprintln(a.out, warnStyle.Render(fmt.Sprintf("sync: %v", err)))
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	a.services.IdleLocker.Start(ctx, a.workers.IdleLockTimeout)
	defer a.services.IdleLocker.Stop()

	return a.commandLoop(ctx)
}

// signIn asks for credentials until login or registration succeeds.
func (a *App) signIn(ctx context.Context) error {
	for {
		choice := a.prompt("login or register? [l/r]: ")
		email := a.prompt("email: ")
		password := a.prompt("password: ")

		var err error
		if strings.HasPrefix(strings.ToLower(choice), "r") {
			err = a.services.AuthService.Register(ctx, email, password)
		} else {
			err = a.services.AuthService.Login(ctx, email, password)
		}
		if err == nil {
			fmt.Fprintln(a.out, okStyle.Render("signed in"))
			return nil
		}

		fmt.Fprintln(a.out, errStyle.Render(fmt.Sprintf("sign in failed: %v", err)))
		if a.prompt("try again? [y/n]: ") != "y" {
			return err
		}
	}
}

// unlock derives and verifies the vault key from the master password.
func (a *App) unlock(ctx context.Context) error {
	for {
		master := a.prompt("master password: ")

		err := a.services.VaultService.Unlock(ctx, master)
		if err == nil {
			fmt.Fprintln(a.out, okStyle.Render("vault unlocked"))
			return nil
		}

		if errors.Is(err, service.ErrIncorrectPassword) {
			fmt.Fprintln(a.out, errStyle.Render("incorrect master password"))
			continue
		}
		return fmt.Errorf("unlock vault: %w", err)
	}
}

func (a *App) commandLoop(ctx context.Context) error {
	for {
		line, ok := a.readLine("> ")
		if !ok {
			// stdin closed; leave nothing unlocked behind
			a.services.VaultService.Lock()
			return nil
		}
		a.services.IdleLocker.Touch()

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch cmd, args := fields[0], fields[1:]; cmd {
		case "quit", "exit":
			a.services.VaultService.Lock()
			return nil
		case "help":
			a.printHelp()
		case "list":
			err = a.listNotes(ctx)
		case "shared":
			err = a.listSharedNotes(ctx)
		case "show":
			err = a.showNote(ctx, args)
		case "add":
			err = a.addNote(ctx)
		case "rm":
			err = a.deleteNote(ctx, args)
		case "copy":
			err = a.copyNote(ctx, args)
		case "sync":
			err = a.services.SyncService.FullSync(ctx)
			if err == nil {
				fmt.Fprintln(a.out, okStyle.Render("synced"))
			}
		case "groups":
			err = a.listGroups(ctx)
		case "group-create":
			err = a.createGroup(ctx, args)
		case "invite":
			err = a.inviteMember(ctx, args)
		case "remove-member":
			err = a.removeMember(ctx, args)
		case "rotate":
			err = a.rotateGroupKey(ctx, args)
		case "share":
			err = a.shareNote(ctx, args)
		case "unshare":
			err = a.removeShare(ctx, args)
		case "corrupt":
			err = a.listCorrupt(ctx)
		case "clear-corrupt":
			err = a.services.NoteService.ClearCorruptNotes(ctx)
		case "lock":
			a.services.VaultService.Lock()
			fmt.Fprintln(a.out, okStyle.Render("vault locked"))
		case "unlock":
			err = a.unlock(ctx)
		default:
			fmt.Fprintln(a.out, hintStyle.Render("unknown command; type `help`"))
		}

		if err != nil {
			if errors.Is(err, service.ErrVaultLocked) {
				fmt.Fprintln(a.out, warnStyle.Render("vault is locked; run `unlock` first"))
				continue
			}
			fmt.Fprintln(a.out, errStyle.Render(err.Error()))
		}
	}
}

func (a *App) printHelp() {
	help := `
  list                               list my notes
  shared                             list notes shared with me
  show <id>                          print one note
  add                                create a note
  rm <id>                            delete a note
  copy <id>                          copy a note body to the clipboard
  sync                               run a full sync now
  groups                             list groups I hold a key for
  group-create <name>                create a group
  invite <groupID> <email>           invite a member
  remove-member <groupID> <userID>   drop a member (then rotate!)
  rotate <groupID>                   rotate the group key
  share group <noteID> <groupID> [read|write]
  share user <noteID> <email> [read|write]
  unshare <noteID> <group|user> <id> revoke a share grant
  corrupt                            list notes excluded as corrupt
  clear-corrupt                      reset the corrupt set
  lock / unlock                      lock or unlock the vault
  quit`
	fmt.Fprintln(a.out, hintStyle.Render(help))
}

func (a *App) listNotes(ctx context.Context) error {
	notes, err := a.services.NoteService.ListNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, hintStyle.Render("no notes yet; use `add`"))
		return nil
	}

	for _, note := range notes {
		fmt.Fprintf(a.out, "%s  %s\n",
			noteIDStyle.Render(note.ID),
			noteTitleStyle.Render(note.Note.Title))
	}
	return nil
}

func (a *App) listSharedNotes(ctx context.Context) error {
	notes, err := a.services.NoteService.ListSharedNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(a.out, hintStyle.Render("nothing is shared with you"))
		return nil
	}

	for _, note := range notes {
		tag := "direct"
		if note.SharedGroupID != "" {
			tag = "group " + note.SharedGroupID
		}
		fmt.Fprintf(a.out, "%s  %s  %s\n",
			noteIDStyle.Render(note.ID),
			noteTitleStyle.Render(note.Note.Title),
			sharedTagStyle.Render(tag+" · "+note.Permission))
	}
	return nil
}

func (a *App) showNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: show <id>")
	}

	note, err := a.services.NoteService.GetNote(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, noteTitleStyle.Render(note.Note.Title))
	fmt.Fprintln(a.out, note.Note.Body)
	fmt.Fprintln(a.out, hintStyle.Render("updated "+note.UpdatedAt))
	return nil
}

func (a *App) addNote(ctx context.Context) error {
	title := a.prompt("title: ")
	fmt.Fprintln(a.out, hintStyle.Render("body (finish with a single `.` line):"))

	var lines []string
	for a.in.Scan() {
		line := a.in.Text()
		if line == "." {
			break
		}
		lines = append(lines, line)
	}

	id, err := a.services.NoteService.SaveNote(ctx, "", models.PlainNote{
		Title: title,
		Body:  strings.Join(lines, "\n"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("saved "+id))
	return nil
}

func (a *App) deleteNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}
	return a.services.NoteService.DeleteNote(ctx, args[0])
}

func (a *App) copyNote(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: copy <id>")
	}

	note, err := a.services.NoteService.GetNote(ctx, args[0])
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(note.Note.Body); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	fmt.Fprintln(a.out, okStyle.Render("copied to clipboard"))
	return nil
}

func (a *App) listGroups(ctx context.Context) error {
	keys, err := a.services.GroupService.LoadMyGroupKeys(ctx)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Fprintln(a.out, hintStyle.Render("you hold no group keys"))
		return nil
	}

	for groupID, key := range keys {
		fmt.Fprintf(a.out, "%s  key v%d\n", noteIDStyle.Render(groupID), key.Version)
	}
	return nil
}

func (a *App) createGroup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: group-create <name>")
	}

	group, err := a.services.GroupService.CreateGroup(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("created group "+group.ID))
	return nil
}

func (a *App) inviteMember(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: invite <groupID> <email>")
	}
	if err := a.services.GroupService.InviteMember(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("invited "+args[1]))
	return nil
}

func (a *App) removeMember(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: remove-member <groupID> <userID>")
	}
	if err := a.services.GroupService.RemoveMember(ctx, args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, warnStyle.Render("member removed; run `rotate "+args[0]+"` to revoke access"))
	return nil
}

func (a *App) rotateGroupKey(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rotate <groupID>")
	}
	if err := a.services.GroupService.RotateGroupKey(ctx, args[0]); err != nil {
		if errors.Is(err, service.ErrKeyUnavailable) {
			return fmt.Errorf("%w: open the affected notes on the device that created them first", err)
		}
		return err
	}

	fmt.Fprintln(a.out, okStyle.Render("group key rotated"))
	return nil
}

func (a *App) shareNote(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.New("usage: share group|user <noteID> <target> [read|write]")
	}

	permission := models.PermissionRead
	if len(args) > 3 {
		permission = args[3]
	}

	switch args[0] {
	case models.SharedWithGroup:
		if err := a.services.ShareService.ShareNoteToGroup(ctx, args[1], args[2], permission); err != nil {
			return err
		}
	case models.SharedWithUser:
		if err := a.services.ShareService.ShareNoteToUser(ctx, args[1], args[2], permission); err != nil {
			return err
		}
	default:
		return errors.New("share target must be `group` or `user`")
	}

	fmt.Fprintln(a.out, okStyle.Render("shared"))
	return nil
}

func (a *App) removeShare(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: unshare <noteID> <group|user> <id>")
	}
	if err := a.services.ShareService.RemoveNoteShare(ctx, args[0], args[1], args[2]); err != nil {
		return err
	}

	fmt.Fprintln(a.out, warnStyle.Render("share removed; rotate the group key to revoke past access"))
	return nil
}

func (a *App) listCorrupt(ctx context.Context) error {
	ids, err := a.services.NoteService.CorruptNoteIDs(ctx)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		fmt.Fprintln(a.out, okStyle.Render("no corrupt notes"))
		return nil
	}

	for _, id := range ids {
		fmt.Fprintln(a.out, errStyle.Render(id))
	}
	fmt.Fprintln(a.out, hintStyle.Render("`clear-corrupt` makes them eligible for listing again"))
	return nil
}

func (a *App) prompt(label string) string {
	line, _ := a.readLine(label)
	return line
}

func (a *App) readLine(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}
