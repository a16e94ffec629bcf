// Command editsurface opens a window with a single editable text line
// drawn by editsurface.Controller.
//
// Prerequisites:
//
//	devbox shell                      # provides Go + OpenGL/X11 headers
//	go run ./cmd/editsurface --text "Hello World"
//
// Type to insert text, use the arrow keys to move the caret and Ctrl+V
// (Cmd+V on macOS) to paste.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/editsurface"
	"github.com/go-theft-auto/editsurface/backend/opengl"
	"github.com/go-theft-auto/editsurface/internal/config"
)

// version is set during build with -ldflags.
var version = "dev"

// idleTimeout bounds how long the loop sleeps without events.
const idleTimeout = 0.5

type options struct {
	configPath string
	text       string
	verbose    bool
	watch      bool
}

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           "editsurface",
		Short:         "Single-line text surface with input-method support",
		Long:          `editsurface renders one line of editable text with OpenGL, blinks a caret, underlines input-method compositions and pastes from the system clipboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.Flags().Changed("text"))
		},
	}
	root.Flags().StringVarP(&opts.configPath, "config", "c", "editsurface.toml", "configuration file (.toml, .yaml)")
	root.Flags().StringVarP(&opts.text, "text", "t", "", "initial text, overrides editor.text")
	root.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	root.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload colors and blink interval when the config file changes")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "editsurface version %s\n", version)
		},
	})
	return root
}

func run(ctx context.Context, opts options, textSet bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := editsurface.Logger()
	loader := config.NewLoader(opts.configPath, logger)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defer loader.Close()

	if textSet {
		cfg.Editor.Text = opts.text
	}
	verbose := opts.verbose || cfg.Verbose
	editsurface.SetVerbose(verbose)

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fbWidth, fbHeight := window.GetFramebufferSize()
	renderer, err := opengl.NewRenderer(fbWidth, fbHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	surface := editsurface.NewDrawListSurface(
		editsurface.NewMonoFont(cfg.Editor.FontSize),
		editsurface.Vec2{
			X: max(float32(cfg.Window.Width)-2*cfg.Surface.X, 0),
			Y: cfg.Surface.Height,
		},
		editsurface.WithSurfaceOffset(editsurface.Vec2{X: cfg.Surface.X, Y: cfg.Surface.Y}),
		editsurface.WithScreenOrigin(opengl.ScreenOrigin(window)),
		editsurface.WithBackground(cfg.Background()),
		editsurface.WithComposingColor(cfg.ComposingColor()),
	)
	edit := editsurface.NewMemoryEditContext(cfg.Editor.Text)
	clip := opengl.NewWindowClipboard(window)

	ctrl, err := editsurface.NewController(edit, surface,
		editsurface.WithLayout(cfg.Layout()),
		editsurface.WithStyle(cfg.Style()),
		editsurface.WithBlinkInterval(cfg.Editor.BlinkInterval.Std()),
		editsurface.WithClipboard(editsurface.FirstClipboard(clip, editsurface.SystemClipboard{})),
		editsurface.WithWake(glfw.PostEmptyEvent),
		editsurface.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	defer ctrl.Close()

	opengl.NewWindowAdapter(window, ctrl, edit, surface)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	ctrl.Start(ctx)

	if opts.watch {
		loader.OnChange(func(c *config.Config) {
			ctrl.Post(func() {
				ctrl.SetStyle(c.Style())
				ctrl.SetBlinkInterval(c.Editor.BlinkInterval.Std())
			})
		})
		if err := loader.Watch(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		logger.Info("watching config", "path", opts.configPath)
	}

	for !window.ShouldClose() {
		glfw.WaitEventsTimeout(idleTimeout)
		clip.Serve()
		ctrl.Pump()

		select {
		case err := <-loader.Errors():
			logger.Warn("config not reloaded", "err", err)
		default:
		}

		fbWidth, fbHeight = window.GetFramebufferSize()
		renderer.Resize(fbWidth, fbHeight)
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		dl := editsurface.AcquireDrawList()
		surface.Build(dl, renderer.FontTextureID())
		err := renderer.Render(dl)
		editsurface.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
