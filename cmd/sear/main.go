// Command sear packs a set of input files into a signed-and-encrypted
// archive. Argument parsing, working-directory handling, and verbose
// status output live here; the archive format and cryptographic engine
// live in the archive, crypto, and keyring packages and are usable as a
// library independent of this CLI.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iqlusioninc/sear/archive"
	"github.com/iqlusioninc/sear/archive/chunkwriter"
	"github.com/iqlusioninc/sear/archive/schema"
	"github.com/iqlusioninc/sear/ioutil/atomic"
	"github.com/iqlusioninc/sear/keyring"
	"github.com/iqlusioninc/sear/log"

	sear "github.com/iqlusioninc/sear"
)

// Exit codes, per the CLI's external interface.
const (
	exitSuccess       = 0
	exitOperationFail = 1
	exitArgumentFail  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

type cliArgs struct {
	create      bool
	extract     bool
	archivePath string
	chdir       string
	keyPath     string
	signPath    string
	verifyPath  string
	preserve    bool
	preservePrm bool
	verbose     bool
	files       []string
}

func parseArgs(args []string) (*cliArgs, error) {
	fs := flag.NewFlagSet("sear", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	a := &cliArgs{}
	fs.BoolVar(&a.create, "c", false, "create archive")
	fs.BoolVar(&a.extract, "x", false, "extract archive")
	fs.StringVar(&a.archivePath, "f", "", "archive file path")
	fs.StringVar(&a.chdir, "C", "", "change working directory before packing")
	fs.StringVar(&a.keyPath, "K", "", "master encryption key file")
	fs.StringVar(&a.signPath, "S", "", "signing key file")
	fs.StringVar(&a.verifyPath, "V", "", "verification key file")
	fs.BoolVar(&a.preserve, "P", false, "preserve absolute paths (reserved)")
	fs.BoolVar(&a.preservePrm, "p", false, "preserve permissions (reserved)")
	fs.BoolVar(&a.verbose, "v", false, "verbose status output")

	if err := fs.Parse(args); err != nil {
		return nil, sear.NewError(sear.ErrArgument, "unable to parse arguments", err)
	}
	a.files = fs.Args()

	return a, nil
}

func run(args []string) int {
	a, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitArgumentFail
	}

	if a.verbose {
		log.SetFactory(log.NewConsole(os.Stderr, log.DebugLevel))
	}

	if err := validateArgs(a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitOperationFail
	}

	switch {
	case a.create:
		if err := runCreate(a); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitOperationFail
		}
	case a.extract:
		// Decryption/extraction is the symmetric dual of the producer
		// path and is out of scope for the core engine this CLI wires
		// up; it is not implemented here.
		fmt.Fprintln(os.Stderr, sear.Errorf(sear.ErrArgument, "extraction is not implemented by this build"))
		return exitOperationFail
	}

	return exitSuccess
}

// validateArgs enforces the semantic requirements of the flag table:
// exactly one of -c/-x, an archive path, and rejection of the still-
// reserved -P/-p flags.
func validateArgs(a *cliArgs) error {
	if a.create == a.extract {
		return sear.Errorf(sear.ErrArgument, "exactly one of -c or -x is required")
	}
	if a.archivePath == "" {
		return sear.Errorf(sear.ErrArgument, "-f <path> is required")
	}
	if a.preserve {
		return sear.Errorf(sear.ErrArgument, "-P (preserve absolute paths) is reserved and not yet supported")
	}
	if a.preservePrm {
		return sear.Errorf(sear.ErrArgument, "-p (preserve permissions) is reserved and not yet supported")
	}
	if a.create && a.keyPath == "" {
		return sear.Errorf(sear.ErrArgument, "-K <path> is required to create an archive")
	}
	return nil
}

func runCreate(a *cliArgs) error {
	logger := log.New().Field("archive", a.archivePath)

	kr := keyring.New()
	if err := kr.Load(a.keyPath); err != nil {
		return err
	}
	if a.signPath != "" {
		if err := kr.LoadSigningKey(a.signPath); err != nil {
			return err
		}
	}

	// Resolve the archive path against the original working directory
	// before -C changes it: the output path is independent of where
	// inputs are read from.
	archivePath, err := filepath.Abs(a.archivePath)
	if err != nil {
		return sear.NewError(sear.ErrIO, "unable to resolve "+a.archivePath, err)
	}

	if a.chdir != "" {
		if err := os.Chdir(a.chdir); err != nil {
			return sear.NewError(sear.ErrIO, "unable to change directory to "+a.chdir, err)
		}
	}

	// The archive is built as it streams, but the target path is replaced
	// atomically: a partially written archive from a failed run must
	// never overwrite a prior good one (spec.md §5, "partially written
	// archive ... is not recoverable").
	pr, pw := io.Pipe()
	buildErrCh := make(chan error, 1)
	go func() {
		err := packFiles(kr, pw, a.files)
		buildErrCh <- err
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.Close()
	}()

	writeErr := atomic.WriteFile(archivePath, pr)
	if buildErr := <-buildErrCh; buildErr != nil {
		return buildErr
	}
	if writeErr != nil {
		return sear.NewError(sear.ErrIO, "unable to atomically write "+archivePath, writeErr)
	}

	logger.Messagef("archived %d files into %s", len(a.files), archivePath)
	return nil
}

func packFiles(kr *keyring.Keyring, out io.Writer, files []string) error {
	active, err := kr.Active()
	if err != nil {
		return err
	}
	lb, err := active.Open()
	if err != nil {
		return err
	}
	defer lb.Destroy()

	b, err := archive.New(out, lb.Bytes(), active.Algorithm, chunkwriter.Kib128, kr.Signer())
	if err != nil {
		return err
	}

	for _, f := range files {
		if err := appendFile(b, f); err != nil {
			return err
		}
	}

	return b.Finish()
}

func appendFile(b *archive.Builder, path string) error {
	entry, err := archive.BuildEntry(path)
	if err != nil {
		return err
	}

	log.New().Field("path", path).Level(log.DebugLevel).Message("archiving entry")

	if entry.Kind.Tag == schema.KindLink {
		// Links carry no payload; their target is recorded in the entry
		// itself, not streamed through the chunk writer.
		return b.Append(entry, bytes.NewReader(nil))
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sear.NewError(sear.ErrFileNotFound, path, err)
		}
		return sear.NewError(sear.ErrIO, "unable to open "+path, err)
	}
	defer f.Close()

	return b.Append(entry, f)
}
