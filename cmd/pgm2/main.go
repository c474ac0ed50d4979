package main

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bodgit/pgm2/igs036"
	"github.com/bodgit/plumbing"
	"github.com/gabriel-vasile/mimetype"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// Extension is the conventional file extension for decrypted images
const Extension = ".dec"

var (
	errUnsupportedGame = errors.New("unsupported game")
	errNotOneImage     = errors.New("archive must contain exactly one ROM image")
	errTooMuch         = errors.New("image is larger than the requested size")
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

// readImage reads a program ROM image from either a raw binary file or
// a zip archive containing exactly one file
func readImage(path string) ([]byte, error) {
	mime, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, err
	}

	switch mime.Extension() {
	case ".zip":
		r, err := zip.OpenReader(path)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		if len(r.File) != 1 {
			return nil, errNotOneImage
		}

		f, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()

		return ioutil.ReadAll(f)
	default:
		return ioutil.ReadFile(path)
	}
}

func games(c *cli.Context) error {
	names := make([]string, 0, len(igs036.Games))
	for name := range igs036.Games {
		names = append(names, name)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)

	table.SetHeader([]string{"Game", "Description", "Key"})

	for _, name := range names {
		g := igs036.Games[name]
		table.Append([]string{name, g.Description, g.KeyStatus.String()})
	}

	table.Render()

	return nil
}

func decrypt(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}

	g, ok := igs036.Games[c.String("game")]
	if !ok {
		return cli.NewExitError(errUnsupportedGame, 1)
	}

	if g.KeyStatus != igs036.KeyGood {
		fmt.Fprintf(os.Stderr, "warning: the %s key is %s, don't trust the output\n", c.String("game"), g.KeyStatus)
	}

	path := c.Args().First()

	b, err := readImage(path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	before := sha1.Sum(b)

	// ROM dumps are sometimes trimmed short of the full region, which
	// shifts nothing but still decrypts the missing tail differently
	// on real hardware, so allow padding back up to size
	if c.IsSet("size") {
		size := int64(c.Uint64("size"))
		if int64(len(b)) > size {
			return cli.NewExitError(errTooMuch, 1)
		}

		if b, err = ioutil.ReadAll(plumbing.PaddedReader(bytes.NewReader(b), size, 0xff)); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if err := igs036.NewDecryptor(g.Key).DecryptROMBytes(b); err != nil {
		return cli.NewExitError(err, 1)
	}

	out := filepath.Join(c.String("directory"), strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+Extension)

	if err := ioutil.WriteFile(out, b, 0666); err != nil {
		return cli.NewExitError(err, 1)
	}

	if c.Bool("verbose") {
		h := sha1.New()

		if _, err := io.Copy(h, bytes.NewReader(b)); err != nil {
			return cli.NewExitError(err, 1)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetBorder(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetTablePadding(" ")
		table.SetNoWhiteSpace(true)

		table.Append([]string{"Game:", g.Description})
		table.Append([]string{"Words:", strconv.Itoa(len(b) / 2)})
		table.Append([]string{"SHA1 in:", fmt.Sprintf("%x", before)})
		table.Append([]string{"SHA1 out:", fmt.Sprintf("%x", h.Sum(nil))})

		table.Render()
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "pgm2"
	app.Usage = "IGS036 program ROM decryption utility"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}

	app.Commands = []*cli.Command{
		{
			Name:        "games",
			Usage:       "List the supported games",
			Description: "",
			Action:      games,
		},
		{
			Name:        "decrypt",
			Usage:       "Decrypt a program ROM image",
			Description: "The image can be a raw binary file or a zip archive containing one",
			Action:      decrypt,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "game",
					Aliases:  []string{"g"},
					Usage:    "decrypt with the key for `GAME`",
					Required: true,
				},
				&cli.StringFlag{
					Name:    "directory",
					Aliases: []string{"d"},
					Usage:   "output directory",
					Value:   cwd,
				},
				&cli.Uint64Flag{
					Name:  "size",
					Usage: "pad a short image with 0xff up to `SIZE` bytes",
				},
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "increase verbosity",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
