package workspace

import (
	"fmt"
	"io"

	"wsinit/config"
	"wsinit/errdefs"
	"wsinit/filesystem"
	"wsinit/release"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	StartBanner = "Starting workspace setup..."
	EndBanner   = "Workspace ready!"
)

type Outcome string

const (
	Created Outcome = "Created"
	Exists  Outcome = "Exists"
)

type Result struct {
	Folder  string
	Outcome Outcome
}

func (r Result) String() string {
	return fmt.Sprintf("%s:%s", r.Outcome, r.Folder)
}

// Initializer ensures every configured folder exists under the base directory.
type Initializer struct {
	config *config.Config
	out    io.Writer
	logger zerolog.Logger
}

func NewInitializer(cfg *config.Config, out io.Writer) *Initializer {
	return &Initializer{
		config: cfg,
		out:    out,
		logger: log.With().
			Str("run", uuid.NewString()).
			Str("version", release.GetVersion()).
			Str("arch", release.GetBuildArch()).
			Logger(),
	}
}

// EnsureFolder creates the named folder if nothing exists at its path and
// prints the outcome line. A present entry is never inspected further, so a
// regular file with the folder's name is reported as existing.
func (i *Initializer) EnsureFolder(name string) (Result, error) {
	path := i.config.FolderPath(name)

	created, err := filesystem.EnsureDirectory(path)
	if err != nil {
		return Result{}, errdefs.DirectoryCreationFailure(err, name)
	}

	result := Result{Folder: name, Outcome: Exists}
	if created {
		result.Outcome = Created
	}

	i.logger.Debug().Str("folder", name).Str("path", path).Str("outcome", string(result.Outcome)).Msg("ensured folder")
	fmt.Fprintln(i.out, result.String())

	return result, nil
}

// Run processes the folders in order between the start and end banners.
// The first failure stops the run; results gathered so far are returned
// alongside the error and the end banner is not printed.
func (i *Initializer) Run() ([]Result, error) {
	if err := i.config.Validate(); err != nil {
		return nil, err
	}

	fmt.Fprintln(i.out, StartBanner)

	results := make([]Result, 0, len(i.config.Folders))
	for _, folder := range i.config.Folders {
		result, err := i.EnsureFolder(folder)
		if err != nil {
			i.logger.Error().Stack().Err(err).Str("folder", folder).Msg("folder setup failed")
			return results, err
		}
		results = append(results, result)
	}

	fmt.Fprintln(i.out, EndBanner)
	i.logger.Debug().Int("folders", len(results)).Msg("workspace ready")

	return results, nil
}
