// File: dormhub/tools/roomctl/main.go
//
// roomctl is the operational CLI for managing room inventory: seeding
// sample rooms per branch, wiping rooms before a re-import, and
// bootstrapping the first admin account.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"dormhub/config"
	"dormhub/database"
	roomRepoPkg "dormhub/database/repository/room"
	userRepoPkg "dormhub/database/repository/user"
	"dormhub/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roomctl",
		Short: "Dormhub room inventory management tool",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadConfig()
			database.InitDB()
		},
	}

	rootCmd.AddCommand(
		seedCmd(),
		deleteRoomsCmd(),
		grantAdminCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample rooms for every branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := roomRepoPkg.NewMongoRoomRepo()

			rooms := sampleRooms()
			for i := range rooms {
				if err := repo.Create(&rooms[i]); err != nil {
					return fmt.Errorf("failed to seed room %q: %v", rooms[i].Name, err)
				}
				fmt.Printf("seeded %-24s  %-10s  %d beds\n", rooms[i].Name, rooms[i].Branch, len(rooms[i].Beds))
			}

			fmt.Printf("done: %d rooms seeded\n", len(rooms))
			return nil
		},
	}
	return cmd
}

func deleteRoomsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete-rooms",
		Short: "Delete rooms, either for one branch or all of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			branch, _ := cmd.Flags().GetString("branch")
			yes, _ := cmd.Flags().GetBool("yes")

			scope := "ALL rooms"
			if branch != "" {
				scope = fmt.Sprintf("all rooms in branch %q", branch)
			}
			if !yes && !confirm(fmt.Sprintf("This will delete %s. Continue?", scope)) {
				fmt.Println("aborted")
				return nil
			}

			repo := roomRepoPkg.NewMongoRoomRepo()
			deleted, err := repo.DeleteByBranch(branch)
			if err != nil {
				return fmt.Errorf("failed to delete rooms: %v", err)
			}

			fmt.Printf("deleted %d rooms\n", deleted)
			return nil
		},
	}

	cmd.Flags().String("branch", "", "Restrict deletion to one branch (empty deletes everything)")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return cmd
}

func grantAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant-admin",
		Short: "Bootstrap an admin account for a Firebase user",
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, _ := cmd.Flags().GetString("uid")
			email, _ := cmd.Flags().GetString("email")
			if uid == "" || email == "" {
				return fmt.Errorf("both --uid and --email are required")
			}

			repo := userRepoPkg.NewMongoUserRepo()
			if err := repo.Upsert(&models.User{
				ID:    uid,
				Email: email,
				Role:  models.RoleAdmin,
			}); err != nil {
				return fmt.Errorf("failed to upsert admin user: %v", err)
			}
			if err := repo.SetRole(uid, models.RoleAdmin); err != nil {
				return fmt.Errorf("failed to set admin role: %v", err)
			}

			fmt.Printf("granted admin to %s (%s)\n", email, uid)
			return nil
		},
	}

	cmd.Flags().String("uid", "", "Firebase UID of the user")
	cmd.Flags().String("email", "", "Email of the user")

	return cmd
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// sampleRooms builds the standard starter inventory for both branches.
func sampleRooms() []models.Room {
	now := time.Now()

	build := func(branch, name, roomType string, price, deposit float64, positions []string) models.Room {
		beds := make([]models.Bed, 0, len(positions))
		for _, p := range positions {
			beds = append(beds, models.Bed{
				ID:       uuid.NewString(),
				Position: p,
			})
		}
		return models.Room{
			ID:        uuid.NewString(),
			Name:      name,
			Branch:    branch,
			Type:      roomType,
			Price:     price,
			Deposit:   deposit,
			Capacity:  len(beds),
			Amenities: []string{"aircon", "wifi", "shared bathroom"},
			Beds:      beds,
			Available: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	quad := []string{"lower", "upper", "lower", "upper"}
	double := []string{"lower", "upper"}
	solo := []string{"single"}

	return []models.Room{
		build(models.BranchGilPuyat, "Room 101", "quadruple", 5500, 5500, quad),
		build(models.BranchGilPuyat, "Room 102", "quadruple", 5500, 5500, quad),
		build(models.BranchGilPuyat, "Room 201", "double", 7500, 7500, double),
		build(models.BranchGilPuyat, "Room 202", "solo", 11000, 11000, solo),
		build(models.BranchGuadalupe, "Room A1", "quadruple", 5000, 5000, quad),
		build(models.BranchGuadalupe, "Room A2", "double", 7000, 7000, double),
		build(models.BranchGuadalupe, "Room B1", "solo", 10500, 10500, solo),
	}
}
