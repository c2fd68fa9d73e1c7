// rsvpctl drives the guest submission flow from the command line:
// it discovers a local server, submits responses, and falls back to
// on-device storage when no server answers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"mariage/internal/client"
	"mariage/internal/invite"
	"mariage/internal/models"
)

const defaultServers = "http://localhost:3002,http://localhost:3001,http://localhost:3000"

func main() {
	servers := flag.String("servers", defaultServers, "comma-separated candidate server URLs, probed in order")
	dataDir := flag.String("data", "data", "directory for local fallback storage")
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()

	// Failure to resolve is not fatal: submissions then go straight to
	// the local tiers.
	api, err := client.Resolve(ctx, strings.Split(*servers, ","), nil)
	if err != nil {
		log.Printf("Warning: %v, falling back to local storage", err)
	}

	switch flag.Arg(0) {
	case "submit":
		runSubmit(ctx, api, *dataDir, flag.Args()[1:])
	case "list":
		runList(ctx, api)
	case "local":
		runLocal(ctx, *dataDir)
	case "delete":
		runDelete(ctx, api, flag.Args()[1:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: rsvpctl [flags] <command>

Commands:
  submit   -nom N -prenom P -contact C -invite-par I -presence Oui|Non [-invitation out.png]
  list     show the newest responses on the server
  local    show responses saved in the local fallback stores
  delete   -id N remove one response on the server`)
	flag.PrintDefaults()
}

func openStores(dataDir string) []client.Store {
	var stores []client.Store
	sqliteStore, err := client.NewSQLiteStore(filepath.Join(dataDir, "fallback.db"))
	if err != nil {
		log.Printf("Warning: local database unavailable: %v", err)
	} else {
		stores = append(stores, sqliteStore)
	}
	stores = append(stores, client.NewFileStore(filepath.Join(dataDir, "fallback.json")))
	return stores
}

func runSubmit(ctx context.Context, api *client.API, dataDir string, args []string) {
	fs := flag.NewFlagSet("submit", flag.ExitOnError)
	nom := fs.String("nom", "", "last name")
	prenom := fs.String("prenom", "", "first name")
	contact := fs.String("contact", "", "email or phone")
	invitePar := fs.String("invite-par", "", "invited by (Mariée, Marié, Famille)")
	presence := fs.String("presence", models.PresenceYes, "Oui or Non")
	invitation := fs.String("invitation", "", "write the personalized invitation PNG here on success")
	fs.Parse(args)

	submitter := client.NewSubmitter(api, openStores(dataDir)...)
	outcome, err := submitter.Submit(ctx, models.RsvpRequest{
		Nom:       *nom,
		Prenom:    *prenom,
		Contact:   *contact,
		InvitePar: *invitePar,
		Presence:  *presence,
	})
	if err != nil {
		log.Fatalf("Submission failed: %v", err)
	}

	fmt.Println(outcome.Message)
	if outcome.Saved == client.SavedLocal {
		fmt.Printf("Saved to the %s store with local id %d\n", outcome.Store, outcome.Record.ID)
	}

	if *invitation != "" && outcome.OfferInvitation() {
		data, err := invite.Render(outcome.Record.Prenom, outcome.Record.Nom)
		if err != nil {
			log.Fatalf("Failed to render invitation: %v", err)
		}
		if err := os.WriteFile(*invitation, data, 0644); err != nil {
			log.Fatalf("Failed to write invitation: %v", err)
		}
		fmt.Printf("Invitation written to %s\n", *invitation)
	}
}

func runList(ctx context.Context, api *client.API) {
	if api == nil {
		log.Fatal("No server available")
	}
	rsvps, err := api.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list responses: %v", err)
	}
	printRsvps(rsvps)
}

func runLocal(ctx context.Context, dataDir string) {
	for _, store := range openStores(dataDir) {
		rsvps, err := store.List(ctx)
		if err != nil {
			log.Printf("Warning: %s store: %v", store.Name(), err)
			continue
		}
		fmt.Printf("-- %s store --\n", store.Name())
		printRsvps(rsvps)
	}
}

func runDelete(ctx context.Context, api *client.API, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "response id")
	fs.Parse(args)

	if api == nil {
		log.Fatal("No server available")
	}
	deleted, err := api.Delete(ctx, *id)
	if err != nil {
		log.Fatalf("Failed to delete: %v", err)
	}
	fmt.Printf("Deleted %d response(s)\n", deleted)
}

func printRsvps(rsvps []models.Rsvp) {
	if len(rsvps) == 0 {
		fmt.Println("No responses")
		return
	}
	for _, r := range rsvps {
		fmt.Printf("%4d  %-20s %-20s %-25s %-10s %-4s %s\n",
			r.ID, r.Nom, r.Prenom, r.Contact, r.InvitePar, r.Presence, r.CreatedAt)
	}
}
