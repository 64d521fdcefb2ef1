package terminal

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"cabinet/internal/errors"
	"cabinet/internal/usecase"
	"cabinet/internal/util"
)

// Input commands. Any other line is a username candidate.
const (
	CmdQuit   = "/quit"
	CmdExit   = "/exit"
	CmdWhoAmI = "/whoami"
	CmdQR     = "/qr"
	CmdHelp   = "/help"
)

const (
	prompt    = "username> "
	qrPNGSize = 256
	helpText  = "Type a new username, or: /whoami, /qr [file.png], /help, /quit"
)

// Run reads lines from in until it ends, ctx is done or the user quits.
// The prompt is shown only when interactive is set.
func (pc *ProfileController) Run(ctx context.Context, in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if interactive {
			pc.printf("%s", prompt)
		}
		if !scanner.Scan() {
			return errors.WithStack(scanner.Err())
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		fields := strings.Fields(line)
		command := ""
		if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
			command = fields[0]
		}

		switch command {
		case CmdQuit, CmdExit:
			return nil
		case CmdHelp:
			pc.printf("%s\n", helpText)
		case CmdWhoAmI:
			if profile, ok := pc.DisplayedProfile(); ok {
				pc.renderProfile(profile)
			} else {
				pc.renderStatus(usecase.StatusMessage{Text: MsgProfileNotLoaded, Severity: usecase.SeverityNeutral})
			}
		case CmdQR:
			target := ""
			if len(fields) > 1 {
				target = fields[1]
			}
			if err := pc.showIdentityQR(ctx, target); err != nil {
				pc.logger.Warn("QR code unavailable", slog.Any("error", err))
				pc.printf("QR code unavailable: %v\n", err)
			}
		case "":
			pc.Submit(ctx, line)
		default:
			pc.printf("Unknown command: %s\n%s\n", command, helpText)
		}
	}
}

// showIdentityQR prints the identity QR code, or writes it as PNG to path when given.
func (pc *ProfileController) showIdentityQR(ctx context.Context, path string) error {
	identity, err := pc.identity.GetOrCreateIdentity(ctx)
	if err != nil {
		return err
	}

	if path == "" {
		text, err := pc.qr.IdentityText(identity)
		if err != nil {
			return err
		}
		pc.printf("%s", text)

		return nil
	}

	png, err := pc.qr.IdentityPNG(identity, qrPNGSize)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o600); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	pc.printf("QR code written to %s (%s)\n", path, util.FormatBytes(int64(len(png))))

	return nil
}
