package commands

import (
	"github.com/spf13/cobra"

	"github.com/ec2fab/ec2fab/cmd/ec2fab/handlers"
)

// Rsync returns the rsync command for uploading a directory to an instance.
//
// Optional flags:
//   - --config: path to the settings file
//   - --by-name: treat REF as a Name tag value instead of an instance id
//   - --content: upload the directory's contents instead of the directory
//   - --rsync-args: replace the default rsync options
func Rsync() *cobra.Command {
	var (
		configPath string
		byName     bool
		content    bool
		rsyncArgs  string
	)

	cmd := &cobra.Command{
		Use:   "rsync REF LOCAL_DIR REMOTE_DIR",
		Short: "Upload a local directory to an instance",
		Long: `Rsync uploads LOCAL_DIR to REMOTE_DIR on the instance, resolving the
host, login user and key file the same way the ssh command does. The
rsync binary must be installed locally.

By default the directory itself lands inside REMOTE_DIR. With --content
only the directory's contents do, following rsync's trailing-slash
rule.

Examples:
  # Upload ./site into /var/www (creates /var/www/site)
  ec2fab rsync web1 --by-name ./site /var/www

  # Upload the contents of ./site into /var/www/html
  ec2fab rsync web1 --by-name --content ./site /var/www/html

  # Custom rsync options
  ec2fab rsync i-0abc123 ./data /srv/data --rsync-args "-az --delete"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Rsync(cmd.Context(), handlers.RsyncOptions{
				ConfigPath:  configPath,
				Ref:         args[0],
				ByName:      byName,
				LocalDir:    args[1],
				RemoteDir:   args[2],
				SyncContent: content,
				RsyncArgs:   rsyncArgs,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to settings file (default: ec2fab.yaml)")
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat REF as a Name tag value")
	cmd.Flags().BoolVar(&content, "content", false, "Upload the directory's contents instead of the directory itself")
	cmd.Flags().StringVar(&rsyncArgs, "rsync-args", "", `Options passed to rsync (default: "-av")`)

	return cmd
}
