package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-course-keeper/internal/adapter"
	"github.com/MKhiriev/go-course-keeper/internal/config"
	"github.com/MKhiriev/go-course-keeper/internal/logger"
	"github.com/MKhiriev/go-course-keeper/models"
)

const usage = `usage: client [flags] <command>

commands:
  list [search] [page]   list courses (manager only)
  get <id>               show a course
  create <title>         create a course (manager only)
  version                print the server version`

var errUsage = errors.New(usage)

func main() {
	log := logger.NewConsoleLogger("course-keeper-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*cfg.Adapter.RequestTimeout)
	defer cancel()

	if err = run(ctx, serverAdapter, cfg); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.Fatal().Err(err).Msg("command failed")
	}
}

func run(ctx context.Context, api adapter.ServerAdapter, cfg *config.ClientConfig) error {
	if len(cfg.Args) == 0 {
		return errUsage
	}

	command, args := cfg.Args[0], cfg.Args[1:]
	if command == "version" {
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	}

	if _, err := api.Login(ctx, models.LoginRequest{
		Email:    cfg.Credentials.Email,
		Password: cfg.Credentials.Password,
	}); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	switch command {
	case "list":
		request := models.ListCoursesRequest{}
		if len(args) > 0 {
			request.Search = args[0]
		}
		if len(args) > 1 {
			page, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil || page == 0 {
				return errUsage
			}
			request.Page = page
		}

		page, err := api.ListCourses(ctx, request)
		if err != nil {
			return err
		}
		return printJSON(page)
	case "get":
		if len(args) != 1 {
			return errUsage
		}

		course, err := api.GetCourse(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(course)
	case "create":
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return errUsage
		}

		id, err := api.CreateCourse(ctx, title)
		if err != nil {
			return err
		}
		return printJSON(models.CreateCourseResponse{CourseID: id})
	default:
		return errUsage
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
