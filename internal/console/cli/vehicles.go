package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/resources"
)

func (a *App) Vehicles(ctx context.Context, args []string) {
	if !a.requireSession(ctx) {
		return
	}

	sub := "list"
	if len(args) > 0 {
		sub = args[0]
	}

	switch sub {
	case "list":
		a.listVehicles(ctx, 1)
	case "page":
		if len(args) < 2 {
			printlnFn("Usage: vehicles page <n>")
			return
		}
		page, err := strconv.Atoi(args[1])
		if err != nil || page < 1 {
			printlnFn("Usage: vehicles page <n>")
			return
		}
		a.listVehicles(ctx, page)
	case "filter":
		a.setVehicleFilters(ctx)
	case "clearfilter":
		a.vehicles.ClearFilters()
		a.listVehicles(ctx, 1)
	case "add":
		a.addVehicle(ctx)
	case "edit":
		a.editVehicle(ctx)
	case "remove":
		a.removeVehicle(ctx)
	case "setimage":
		a.setVehicleImage(ctx)
	default:
		printlnFn("Usage: vehicles [list|page|filter|clearfilter|add|edit|remove|setimage]")
	}
}

func (a *App) listVehicles(ctx context.Context, page int) {
	if err := a.vehicles.FetchPage(ctx, page); err != nil {
		log.Printf("error: %v", err)
	}

	snap := a.vehicles.Snapshot()
	reportStatus(snap.Status, snap.Err)

	w := newTable()
	fmt.Fprintln(w, "ID\tNAME\tBRAND\tTYPE\tLOCATION\tSEATS\tSTATUS")
	for _, v := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			v.ID, v.Name, v.Brand, v.VehicleType, v.Location, v.Seats, v.Status)
	}
	w.Flush()

	p := a.vehicles.Pagination()
	printlnFn(fmt.Sprintf("Page %d of %d (%d vehicles)", p.Page, p.TotalPages, p.Total))
}

func (a *App) setVehicleFilters(ctx context.Context) {
	var f resources.VehicleFilters
	var err error

	prompts := []struct {
		label string
		dst   *string
	}{
		{"Brand filter (empty for any)", &f.Brand},
		{"Type filter (Car/Mini Bus/Bus/Coaster, empty for any)", &f.VehicleType},
		{"Location filter (empty for any)", &f.Location},
		{"Status filter (Available/Unavailable, empty for any)", &f.Status},
	}
	for _, p := range prompts {
		*p.dst, err = GetSimpleText(a.reader, p.label, os.Stdout)
		if err != nil {
			log.Printf("error: %v", err)
			return
		}
	}

	a.vehicles.SetFilters(f)
	a.listVehicles(ctx, 1)
}

func (a *App) promptVehicleDraft() (api.Vehicle, error) {
	var draft api.Vehicle
	var err error

	if draft.Name, err = GetSimpleText(a.reader, "Name", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Brand, err = GetSimpleText(a.reader, "Brand", os.Stdout); err != nil {
		return draft, err
	}
	if draft.VehicleType, err = GetSimpleText(a.reader, "Type (Car/Mini Bus/Bus/Coaster)", os.Stdout); err != nil {
		return draft, err
	}
	if draft.Location, err = GetSimpleText(a.reader, "Location", os.Stdout); err != nil {
		return draft, err
	}

	seats, err := GetSimpleText(a.reader, "Seats", os.Stdout)
	if err != nil {
		return draft, err
	}
	if seats != "" {
		if draft.Seats, err = strconv.Atoi(seats); err != nil {
			return draft, fmt.Errorf("seats must be a number: %w", err)
		}
	}

	features, err := GetSimpleText(a.reader, "Features (comma separated)", os.Stdout)
	if err != nil {
		return draft, err
	}
	for _, feature := range strings.Split(features, ",") {
		if feature = strings.TrimSpace(feature); feature != "" {
			draft.Features = append(draft.Features, feature)
		}
	}

	if draft.Status, err = GetSimpleText(a.reader, "Status (Available/Unavailable)", os.Stdout); err != nil {
		return draft, err
	}
	return draft, nil
}

func (a *App) addVehicle(ctx context.Context) {
	draft, err := a.promptVehicleDraft()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.vehicles.Create(ctx, draft); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("Vehicle added.")
}

// promptVehiclePatch collects an edit where every answer is optional:
// an empty line keeps the stored value.
func (a *App) promptVehiclePatch() (api.VehiclePatch, error) {
	var patch api.VehiclePatch
	var err error

	if patch.Name, err = GetOptionalText(a.reader, "Name", os.Stdout); err != nil {
		return patch, err
	}
	if patch.Brand, err = GetOptionalText(a.reader, "Brand", os.Stdout); err != nil {
		return patch, err
	}
	if patch.VehicleType, err = GetOptionalText(a.reader, "Type (Car/Mini Bus/Bus/Coaster)", os.Stdout); err != nil {
		return patch, err
	}
	if patch.Location, err = GetOptionalText(a.reader, "Location", os.Stdout); err != nil {
		return patch, err
	}

	seats, err := GetOptionalText(a.reader, "Seats", os.Stdout)
	if err != nil {
		return patch, err
	}
	if seats != nil {
		n, err := strconv.Atoi(*seats)
		if err != nil {
			return patch, fmt.Errorf("seats must be a number: %w", err)
		}
		patch.Seats = &n
	}

	features, err := GetOptionalText(a.reader, "Features (comma separated)", os.Stdout)
	if err != nil {
		return patch, err
	}
	if features != nil {
		for _, feature := range strings.Split(*features, ",") {
			if feature = strings.TrimSpace(feature); feature != "" {
				patch.Features = append(patch.Features, feature)
			}
		}
	}

	if patch.Status, err = GetOptionalText(a.reader, "Status (Available/Unavailable)", os.Stdout); err != nil {
		return patch, err
	}
	return patch, nil
}

func (a *App) editVehicle(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Vehicle ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	patch, err := a.promptVehiclePatch()
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.vehicles.Update(ctx, id, patch); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("Vehicle updated.")
}

func (a *App) removeVehicle(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Vehicle ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	if err := a.vehicles.Remove(ctx, id); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("Vehicle removed.")
}

func (a *App) setVehicleImage(ctx context.Context) {
	id, err := GetSimpleText(a.reader, "Vehicle ID", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	path, err := GetSimpleText(a.reader, "Image file path", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	if err := a.vehicles.UploadImage(ctx, id, "image/jpeg", data); err != nil {
		log.Printf("error: %v", err)
		return
	}
	printlnFn("Image uploaded.")
}
