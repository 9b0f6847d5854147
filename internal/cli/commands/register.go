package commands

import (
	"StudyArchive/internal/config"
	"context"
	"errors"
	"fmt"

	"StudyArchive/internal/validation"
)

type registerCmd struct{}

func (registerCmd) Name() string        { return "register" }
func (registerCmd) Description() string { return "Create a new account" }
func (registerCmd) Usage() string       { return "register <username> <email> <password>" }

func (registerCmd) Run(_ context.Context, cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return ErrUsage
	}
	username, email, password := args[0], args[1], args[2]

	// локальная проверка до похода на сервер, сообщения совпадают с серверными
	for _, res := range []validation.Result{
		validation.ValidateUsername(username, nil),
		validation.ValidateEmail(email, nil),
		validation.ValidatePassword(password, nil),
	} {
		if !res.IsValid {
			return fmt.Errorf("%s", res.Message)
		}
	}

	client := newClient(cfg)
	// та же проверка занятости, что делала форма регистрации
	if taken, err := client.UsernameExists(username); err == nil && taken {
		return errors.New("Username already exists")
	}
	if taken, err := client.EmailExists(email); err == nil && taken {
		return errors.New("Email already exists")
	}

	id, err := client.Register(username, email, password)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "User registered successfully (id %d)\n", id)
	fmt.Fprintln(Out, "Run `sacli login` to start a session")
	return nil
}

func init() { RegisterCmd(registerCmd{}) }
