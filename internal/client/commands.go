// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-refute/models"
)

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) encrypt(ctx context.Context, args []string) error {
	fs := a.newFlagSet("encrypt")
	input := fs.String("input", "", "phrase to derive the key from")
	copyBlob := fs.Bool("copy", false, "copy the blob to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// -input wins over positional words; positional words form one phrase.
	phrase := *input
	if phrase == "" {
		phrase = strings.Join(fs.Args(), " ")
	}

	resp, err := a.services.ShareService.Encrypt(ctx, models.EncryptRequest{Input: phrase})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, resp.Blob)

	if *copyBlob {
		if err = a.copyToClipboard(resp.Blob); err != nil {
			// The blob is already printed; a missing clipboard is not fatal.
			a.logger.Warn().Err(err).Msg("copy to clipboard")
			fmt.Fprintf(a.errOut, "could not copy to clipboard: %v\n", err)
			return nil
		}
		fmt.Fprintln(a.errOut, "copied to clipboard")
	}
	return nil
}

func (a *App) decrypt(ctx context.Context, args []string) error {
	fs := a.newFlagSet("decrypt")
	key := fs.String("key", "", "try only this phrase")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return ErrMissingBlob
	}

	resp, err := a.services.ShareService.Decrypt(ctx, models.DecryptRequest{
		Blob:      strings.TrimSpace(fs.Arg(0)),
		Candidate: *key,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s\nkey: %s\n", resp.Message, resp.Key)
	return nil
}

func (a *App) candidates(ctx context.Context) error {
	resp, err := a.services.ShareService.Candidates(ctx)
	if err != nil {
		return err
	}

	for _, c := range resp.Candidates {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *App) check(ctx context.Context) error {
	resp, err := a.services.ShareService.CheckCandidates(ctx)
	if err != nil {
		return err
	}

	if resp.OK {
		fmt.Fprintln(a.out, "no collisions")
		return nil
	}
	for _, c := range resp.Collisions {
		fmt.Fprintf(a.out, "%q and %q share key %s\n", c.First, c.Second, c.Key)
	}
	return nil
}

func (a *App) version(ctx context.Context) error {
	fmt.Fprint(a.out, a.buildInfo.String())

	if a.services.AppInfoService != nil {
		fmt.Fprintf(a.out, "Server version: %s\n", a.services.AppInfoService.GetAppVersion(ctx))
	}
	return nil
}
