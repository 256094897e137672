package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mascotas/mascotas-admin/internal/admin/tui"
	"github.com/mascotas/mascotas-admin/internal/logging"
	"github.com/mascotas/mascotas-admin/internal/petapi"
	"github.com/mascotas/mascotas-admin/internal/ui"
)

// Record field flags shared by create and update
var (
	petNombre      string
	petTipo        string
	petRaza        string
	petEdad        string
	petDireccion   string
	petPropietario string
	petFoto        string
)

var deleteYes bool

func init() {
	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().StringVar(&petNombre, "nombre", "", "Pet name")
		c.Flags().StringVar(&petTipo, "tipo", "", "Kind of animal (e.g. Perro, Gato)")
		c.Flags().StringVar(&petRaza, "raza", "", "Breed")
		c.Flags().StringVar(&petEdad, "edad", "", "Age")
		c.Flags().StringVar(&petDireccion, "direccion", "", "Owner's address")
		c.Flags().StringVar(&petPropietario, "propietario", "", "Owner's name")
	}
	createCmd.Flags().StringVar(&petFoto, "foto", "", "Path to an image file to upload with the record")
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Delete without asking for confirmation")

	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}

// adminCmd is the explicit form of running with no command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Launch the interactive admin panel",
	Long: `Launch the full-screen admin panel.

The panel lists every record and lets you create (with an optional photo),
edit and delete pets. Logs are written to a file so they do not disturb the
screen; see 'mascotas-admin config show' for its location.`,
	RunE: runAdmin,
}

func runAdmin(cmd *cobra.Command, args []string) error {
	if err := initLogging(cfg.LogFilePath()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	logging.Info("Starting admin panel", zap.String("base_url", cfg.API.BaseURL))

	model := tui.NewAppModel(newClient(), tui.Options{
		BaseURL:      cfg.API.BaseURL,
		AlertTimeout: cfg.UI.AlertTimeout,
		Context:      ctx,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("admin panel error: %w", err)
	}
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every pet in the registry",
	Example: `  # Table view
  mascotas-admin list

  # JSON output for scripting
  mascotas-admin list --format json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	if err := initLogging("stderr"); err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())

	pets, err := newClient().ListPets(cmd.Context())
	if err != nil {
		return reportFailure(p, "Could not load pets", err)
	}

	switch outputFormat {
	case "json":
		return writeJSON(cmd.OutOrStdout(), pets)
	case "compact":
		for i := range pets {
			p.Println(pets[i].FormatCompact())
		}
		if len(pets) == 0 {
			p.Println(ui.EmptyRegistryText)
		}
	case "detailed":
		for i := range pets {
			p.Println(pets[i].FormatDetailed())
		}
		if len(pets) == 0 {
			p.Println(ui.EmptyRegistryText)
		}
	default:
		p.PrintHeader("Pet registry", "mascotas-admin list", ui.Detail{Key: "API", Value: cfg.API.BaseURL})
		p.PrintPets(pets)
	}
	return nil
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one pet",
	Example: `  mascotas-admin show 12
  mascotas-admin show 12 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := initLogging("stderr"); err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())

	pet, err := newClient().GetPet(cmd.Context(), id)
	if err != nil {
		return reportFailure(p, fmt.Sprintf("Could not load pet #%d", id), err)
	}
	return printPet(cmd.OutOrStdout(), p, pet)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a pet",
	Long: `Create a new record. Every field is required.

With --foto the record is sent as a multipart form together with the image;
otherwise it is sent as JSON.`,
	Example: `  mascotas-admin create --nombre Luna --tipo Gato --raza Siames --edad 3 \
    --direccion "Calle Mayor 1" --propietario "Ana Ruiz" --foto ./luna.jpg`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := initLogging("stderr"); err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())

	input := petapi.PetInput{
		Nombre:      petNombre,
		Tipo:        petTipo,
		Raza:        petRaza,
		Edad:        petapi.Age(petEdad),
		Direccion:   petDireccion,
		Propietario: petPropietario,
	}.Normalize()
	if errs := petapi.ValidatePet(input); len(errs) > 0 {
		return fmt.Errorf("%s", petapi.FormatValidationErrors(errs))
	}

	var photo *petapi.Photo
	if petFoto != "" {
		loaded, err := petapi.LoadPhoto(petFoto)
		if err != nil {
			return reportFailure(p, "Photo rejected", err)
		}
		photo = loaded
		logging.Debug("Photo attached", zap.String("photo", photo.Describe()))
	}

	pet, err := newClient().CreatePet(cmd.Context(), input, photo)
	if err != nil {
		return reportFailure(p, "Could not create pet", err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), pet)
	}
	p.PrintSuccess("Pet created", ui.PetDetails(pet)...)
	return nil
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a pet",
	Long: `Update an existing record. Only the fields given as flags change; the
rest keep their current values. The photo cannot be changed.`,
	Example: `  mascotas-admin update 12 --edad 4 --direccion "Av. Nueva 5"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := initLogging("stderr"); err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())
	client := newClient()

	current, err := client.GetPet(cmd.Context(), id)
	if err != nil {
		return reportFailure(p, fmt.Sprintf("Could not load pet #%d", id), err)
	}

	input := applyFieldFlags(cmd, current.Input()).Normalize()
	if errs := petapi.ValidatePet(input); len(errs) > 0 {
		return fmt.Errorf("%s", petapi.FormatValidationErrors(errs))
	}

	pet, err := client.UpdatePet(cmd.Context(), id, input)
	if err != nil {
		return reportFailure(p, fmt.Sprintf("Could not update pet #%d", id), err)
	}

	if outputFormat == "json" {
		return writeJSON(cmd.OutOrStdout(), pet)
	}
	p.PrintSuccess("Pet updated", ui.PetDetails(pet)...)
	return nil
}

// applyFieldFlags overwrites the fields whose flag was given on the command line
func applyFieldFlags(cmd *cobra.Command, in petapi.PetInput) petapi.PetInput {
	flags := cmd.Flags()
	if flags.Changed("nombre") {
		in.Nombre = petNombre
	}
	if flags.Changed("tipo") {
		in.Tipo = petTipo
	}
	if flags.Changed("raza") {
		in.Raza = petRaza
	}
	if flags.Changed("edad") {
		in.Edad = petapi.Age(petEdad)
	}
	if flags.Changed("direccion") {
		in.Direccion = petDireccion
	}
	if flags.Changed("propietario") {
		in.Propietario = petPropietario
	}
	return in
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a pet",
	Long: `Delete a record from the registry.

The record is shown and you are asked to confirm first. Use --yes to skip the
prompt; it is required when stdin is not a terminal.`,
	Example: `  mascotas-admin delete 12
  mascotas-admin delete 12 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	if err := initLogging("stderr"); err != nil {
		return err
	}
	p := ui.NewPrinter(cmd.OutOrStdout())
	client := newClient()

	if !deleteYes {
		in := cmd.InOrStdin()
		if in == os.Stdin && !ui.IsInteractive() {
			return fmt.Errorf("refusing to delete pet #%d without --yes: stdin is not a terminal", id)
		}

		pet, err := client.GetPet(cmd.Context(), id)
		if err != nil {
			return reportFailure(p, fmt.Sprintf("Could not load pet #%d", id), err)
		}
		if !ui.ConfirmDeletion(in, cmd.OutOrStdout(), pet, p.Width()) {
			logging.Info("Deletion declined", zap.Int("id", id))
			return nil
		}
	}

	res, err := client.DeletePet(cmd.Context(), id)
	if err != nil {
		return reportFailure(p, fmt.Sprintf("Could not delete pet #%d", id), err)
	}

	details := []ui.Detail{{Key: "ID", Value: strconv.Itoa(id)}}
	if res.Message != "" {
		details = append(details, ui.Detail{Key: "Server", Value: res.Message})
	}
	p.PrintSuccess("Pet deleted", details...)
	return nil
}

func printPet(out io.Writer, p *ui.Printer, pet *petapi.Pet) error {
	switch outputFormat {
	case "json":
		return writeJSON(out, pet)
	case "compact":
		p.Print(pet.FormatCompact())
	case "detailed":
		p.Print(pet.FormatDetailed())
	default:
		p.PrintPet(pet)
	}
	return nil
}

func writeJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// reportFailure prints the error box and marks the error as shown.
func reportFailure(p *ui.Printer, title string, err error) error {
	logging.Error(title, zap.Error(err))
	p.PrintError(title, err)
	return &reportedError{err: err}
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	if err := petapi.ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// signalContext is cancelled on Ctrl+C or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
