package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - add:      Pre-provision one device
// - import:   Pre-provision devices from a CSV file
// - qr:       Render the activation QR code of a device
// - firmware: Queue a firmware upgrade for a feeder

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	qrCmd := flag.NewFlagSet("qr", flag.ExitOnError)
	firmwareCmd := flag.NewFlagSet("firmware", flag.ExitOnError)

	addID := addCmd.String("id", "", "Device identifier, e.g. ESP32-ab12-deadbeef")
	addSecret := addCmd.String("secret", "", "Factory secret (15 characters)")

	importFile := importCmd.String("file", "", "CSV file with identifier,secret rows")

	qrID := qrCmd.String("id", "", "Device identifier")
	qrSecret := qrCmd.String("secret", "", "Factory secret")
	qrOutput := qrCmd.String("output", "", "Output PNG path (defaults to <id>.png)")

	firmwareOwner := firmwareCmd.String("feeder", "", "Feeder (device owner) id")
	firmwareVersion := firmwareCmd.String("version", "", "Firmware version")
	firmwareURL := firmwareCmd.String("url", "", "Download URL of the image")
	firmwareSHA := firmwareCmd.String("sha256", "", "Optional SHA-256 of the image")
	firmwareSize := firmwareCmd.Int64("size", 0, "Optional image size in bytes")
	firmwareFile := firmwareCmd.String("file", "", "Local copy of the image; fills --sha256 and --size")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := provisionFlags{
		Add: addFlags{
			cmd:    addCmd,
			id:     addID,
			secret: addSecret,
		},
		Import: importFlags{
			cmd:  importCmd,
			file: importFile,
		},
		QR: qrFlags{
			cmd:    qrCmd,
			id:     qrID,
			secret: qrSecret,
			output: qrOutput,
		},
		Firmware: firmwareFlags{
			cmd:     firmwareCmd,
			owner:   firmwareOwner,
			version: firmwareVersion,
			url:     firmwareURL,
			sha256:  firmwareSHA,
			size:    firmwareSize,
			file:    firmwareFile,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type provisionFlags struct {
	Add      addFlags
	Import   importFlags
	QR       qrFlags
	Firmware firmwareFlags
}

type addFlags struct {
	cmd    *flag.FlagSet
	id     *string
	secret *string
}

type importFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type qrFlags struct {
	cmd    *flag.FlagSet
	id     *string
	secret *string
	output *string
}

type firmwareFlags struct {
	cmd     *flag.FlagSet
	owner   *string
	version *string
	url     *string
	sha256  *string
	size    *int64
	file    *string
}

func runSubcommand(ctx context.Context, flags *provisionFlags) error {
	switch os.Args[1] {
	case "add":
		return handleAdd(ctx, flags)
	case "import":
		return handleImport(ctx, flags)
	case "qr":
		return handleQR(ctx, flags)
	case "firmware":
		return handleFirmware(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleAdd(ctx context.Context, flags *provisionFlags) error {
	if err := flags.Add.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse add flags")
	}

	if *flags.Add.id == "" || *flags.Add.secret == "" {
		return errors.New("--id and --secret are required for add command")
	}

	return runAdd(ctx, *flags.Add.id, *flags.Add.secret)
}

func handleImport(ctx context.Context, flags *provisionFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}

	if *flags.Import.file == "" {
		return errors.New("--file flag is required for import command")
	}

	return runImport(ctx, *flags.Import.file)
}

func handleQR(ctx context.Context, flags *provisionFlags) error {
	if err := flags.QR.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse qr flags")
	}

	if *flags.QR.id == "" || *flags.QR.secret == "" {
		return errors.New("--id and --secret are required for qr command")
	}

	output := *flags.QR.output
	if output == "" {
		output = *flags.QR.id + ".png"
	}

	return runQR(ctx, *flags.QR.id, *flags.QR.secret, output)
}

func handleFirmware(ctx context.Context, flags *provisionFlags) error {
	if err := flags.Firmware.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse firmware flags")
	}

	if *flags.Firmware.owner == "" || *flags.Firmware.version == "" || *flags.Firmware.url == "" {
		return errors.New("--feeder, --version and --url are required for firmware command")
	}

	return runFirmware(ctx, &flags.Firmware)
}

func printUsage() {
	fmt.Println("Usage: provision <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  add         Pre-provision one device")
	fmt.Println("  import      Pre-provision devices from a CSV file")
	fmt.Println("  qr          Render the activation QR code of a device")
	fmt.Println("  firmware    Queue a firmware upgrade for a feeder")
	fmt.Println("")
	fmt.Println("Use 'provision <command> -h' for more information about a command.")
}
