package main

import (
	"errors"
	"fmt"
	"log"
	"net/mail"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"robostaff_backend/internals/configs"
	"robostaff_backend/internals/databases"
	adminModel "robostaff_backend/internals/features/admins/users/model"
)

var (
	flagName     string
	flagEmail    string
	flagPassword string
)

var rootCmd = &cobra.Command{
	Use:   "createadmin",
	Short: "Membuat akun admin baru",
	Long:  "Membuat akun pengelola baru langsung di database. Dipakai untuk bootstrap admin pertama atau menambah admin dari server.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := mail.ParseAddress(flagEmail); err != nil {
			return fmt.Errorf("email tidak valid: %s", flagEmail)
		}
		if len(flagPassword) < 8 {
			return errors.New("password minimal 8 karakter")
		}

		configs.LoadEnv()
		databases.ConnectDB()
		if err := databases.Migrate(databases.DB); err != nil {
			return fmt.Errorf("gagal migrasi: %w", err)
		}

		var count int64
		if err := databases.DB.Model(&adminModel.AdminUserModel{}).
			Where("email = ?", flagEmail).Count(&count).Error; err != nil {
			return fmt.Errorf("gagal cek email: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("email %s sudah terdaftar", flagEmail)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(flagPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("gagal hash password: %w", err)
		}

		admin := adminModel.AdminUserModel{
			Name:     flagName,
			Email:    flagEmail,
			Password: string(hashed),
			IsActive: true,
		}
		if err := databases.DB.Create(&admin).Error; err != nil {
			return fmt.Errorf("gagal membuat admin: %w", err)
		}

		log.Printf("[INFO] Admin %s (%s) berhasil dibuat, id=%s", admin.Name, admin.Email, admin.ID)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagName, "name", "", "nama admin")
	rootCmd.Flags().StringVar(&flagEmail, "email", "", "email admin")
	rootCmd.Flags().StringVar(&flagPassword, "password", "", "password admin (min 8 karakter)")
	_ = rootCmd.MarkFlagRequired("name")
	_ = rootCmd.MarkFlagRequired("email")
	_ = rootCmd.MarkFlagRequired("password")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
