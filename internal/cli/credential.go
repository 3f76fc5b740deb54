package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/guilhermegsr/password-manager-LP/internal/common"
	"github.com/guilhermegsr/password-manager-LP/internal/models"
	"github.com/guilhermegsr/password-manager-LP/internal/services"
)

// Add collects the fields of a new credential and persists it. The password
// and notes are encrypted by the service; skipping a prompt stores the field
// as absent rather than empty.
func (a *App) Add(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getOptionalText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getOptionalText(a.reader, "Enter URL", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password (Enter to skip)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	notes, err := getMultiline(a.reader, "Enter notes (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	in := services.CredentialInput{Name: name, Username: username, URL: url}
	if len(password) > 0 {
		value := string(password)
		in.Password = &value
	}
	if notes != "" {
		in.Notes = &notes
	}

	created, err := a.credentialService.Create(ctx, a.session, in)
	if err != nil {
		return reportErr(err)
	}

	printlnFn("Created:", created.ID)
	return nil
}

// List prints a one-line summary for every credential in the vault.
// Nothing is decrypted.
func (a *App) List(ctx context.Context) error {
	list, err := a.credentialService.List(ctx, a.session)
	if err != nil {
		return reportErr(err)
	}
	printSummaries(list)
	return nil
}

// Search prints the credentials whose name, username or url matches the query.
func (a *App) Search(ctx context.Context, query string) error {
	list, err := a.credentialService.Search(ctx, a.session, query)
	if err != nil {
		return reportErr(err)
	}
	printSummaries(list)
	return nil
}

// Show fetches a single credential by ID and displays it with the secret
// fields revealed.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter credential id to show", os.Stdout)
	if err != nil {
		return err
	}

	details, err := a.credentialService.GetFull(ctx, a.session, id)
	if err != nil {
		return reportErr(err)
	}

	printlnFn("Name:", details.Name)
	printlnFn("Username:", orNotSet(details.Username))
	printlnFn("URL:", orNotSet(details.URL))
	printlnFn("Password:", orNotSet(details.Password))
	printlnFn("Notes:", orNotSet(details.Notes))
	printlnFn("Updated:", details.UpdatedAt.Format("2006-01-02 15:04:05"))
	return nil
}

// Edit prompts for a credential ID and new field values. Skipped prompts
// leave the corresponding field unchanged.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter credential id to edit", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getOptionalText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getOptionalText(a.reader, "Enter new username", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getOptionalText(a.reader, "Enter new URL", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter new password (Enter to keep)", os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	notes, err := getMultiline(a.reader, "Enter new notes (double Enter to finish):", os.Stdout)
	if err != nil {
		return err
	}

	in := services.CredentialUpdate{Name: name, Username: username, URL: url}
	if len(password) > 0 {
		value := string(password)
		in.Password = &value
	}
	if notes != "" {
		in.Notes = &notes
	}

	if err := a.credentialService.Update(ctx, a.session, id, in); err != nil {
		return reportErr(err)
	}

	printlnFn("Updated:", id)
	return nil
}

// Delete removes a credential by its identifier, prompting the user for the ID.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter credential id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.credentialService.Delete(ctx, a.session, id); err != nil {
		return reportErr(err)
	}

	printlnFn("Deleted:", id)
	return nil
}

func printSummaries(list []models.CredentialSummary) {
	if len(list) == 0 {
		printlnFn("No credentials")
		return
	}
	for _, item := range list {
		printlnFn(fmt.Sprintf("%s  %-20s %-20s %s",
			item.ID, item.Name, fromPtr(item.Username), fromPtr(item.URL)))
	}
}

func orNotSet(value *string) string {
	if value == nil {
		return "(not set)"
	}
	return *value
}

func fromPtr(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
