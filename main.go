package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"notepanel/config"
	"notepanel/database"
	"notepanel/database/model"
	"notepanel/logger"
	"notepanel/util/crypto"
	"notepanel/web"
	"notepanel/web/global"
	"notepanel/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	global.SetWebServer(server)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, os.Interrupt)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			global.SetWebServer(server)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetPassword(email string, password string) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	user, err := userService.GetUserByEmail(email)
	if err != nil {
		fmt.Println("user not found:", email)
		return
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		fmt.Println("hash password failed:", err)
		return
	}
	err = database.GetDB().Model(model.User{}).
		Where("id = ?", user.Id).
		Update("password", hash).
		Error
	if err != nil {
		fmt.Println("reset password failed:", err)
		return
	}
	fmt.Println("password updated for", email)
}

func deleteUser(email string) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	user, err := userService.GetUserByEmail(email)
	if err != nil {
		fmt.Println("user not found:", email)
		return
	}

	noteService := service.NoteService{}
	if _, err := noteService.DeleteNotesForUser(user.Id); err != nil {
		fmt.Println("delete user notes failed:", err)
		return
	}
	if err := userService.DeleteUserByEmail(email); err != nil {
		fmt.Println("delete user failed:", err)
		return
	}
	fmt.Println("deleted user", email)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded, using environment as-is")
	}

	var email, password string

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "multi-tenant note-taking web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	adminCmd := &cobra.Command{
		Use:   "admin",
		Short: "account maintenance commands",
	}

	resetPasswordCmd := &cobra.Command{
		Use:   "reset-password",
		Short: "set a new password for an existing user",
		Run: func(cmd *cobra.Command, args []string) {
			resetPassword(email, password)
		},
	}
	resetPasswordCmd.Flags().StringVar(&email, "email", "", "user email")
	resetPasswordCmd.Flags().StringVar(&password, "password", "", "new password")
	resetPasswordCmd.MarkFlagRequired("email")
	resetPasswordCmd.MarkFlagRequired("password")

	deleteUserCmd := &cobra.Command{
		Use:   "delete-user",
		Short: "remove a user and all of their notes",
		Run: func(cmd *cobra.Command, args []string) {
			deleteUser(email)
		},
	}
	deleteUserCmd.Flags().StringVar(&email, "email", "", "user email")
	deleteUserCmd.MarkFlagRequired("email")

	adminCmd.AddCommand(resetPasswordCmd, deleteUserCmd)
	rootCmd.AddCommand(adminCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
