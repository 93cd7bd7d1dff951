// Package task provides the task store, query layer, and progression API
// for taskdeck. This file holds the built-in seed catalog used when the
// durable slot is absent or empty.
package task

import (
	"time"

	"github.com/kvarley/taskdeck/internal/domain"
)

// SeedTasks returns the initial fixed task catalog. Pure data, no behavior:
// the service loads it as a fallback so the store is never left empty.
// Timestamps are derived from now so seed data looks current.
func SeedTasks(now time.Time) []domain.Task {
	return []domain.Task{
		{
			ID:          1,
			Title:       "Campaign review: spring launch",
			Description: "Review the tracked landing pages for the spring launch campaign.",
			Type:        domain.TaskTypeViewer,
			AssignedTo:  101,
			AssignedBy:  7,
			Status:      domain.TaskStatusAssigned,
			Priority:    domain.PriorityHigh,
			ExpiryDate:  now.AddDate(0, 0, 3),
			CreatedAt:   now,
			UpdatedAt:   now,
			SessionInstructions: domain.InstructionBlock{
				Title:   "Session setup",
				Content: "Use the assigned proxy for every link. Clear cookies between links.",
			},
			TaskInstructions: domain.InstructionBlock{
				Title:   "What to check",
				Content: "Confirm the page loads, the tracking pixel fires, and no redirect loop occurs.",
			},
			Subtasks: []domain.Subtask{
				{
					ID:     1,
					Title:  "Landing pages",
					Type:   domain.TaskTypeViewer,
					Status: domain.SubtaskStatusPending,
					Links: []domain.Link{
						{
							ID:           1,
							DisplayURL:   newMaskedURL(),
							RealURL:      "https://shop.example.com/spring?utm_campaign=launch",
							Proxy:        "px-eu-3.proxy.internal:8080",
							Title:        "Spring landing page",
							Instructions: "Scroll to the footer before leaving.",
							TimeRequired: 90,
							Status:       domain.LinkStatusPending,
						},
						{
							ID:           2,
							DisplayURL:   newMaskedURL(),
							RealURL:      "https://shop.example.com/spring/offers",
							Proxy:        "px-eu-3.proxy.internal:8080",
							Title:        "Offers page",
							TimeRequired: 60,
							Status:       domain.LinkStatusPending,
						},
					},
				},
				{
					ID:     2,
					Title:  "Checkout flow",
					Type:   domain.TaskTypeViewer,
					Status: domain.SubtaskStatusPending,
					Links: []domain.Link{
						{
							ID:           1,
							DisplayURL:   newMaskedURL(),
							RealURL:      "https://shop.example.com/cart",
							Proxy:        "px-eu-5.proxy.internal:8080",
							Title:        "Cart page",
							Instructions: "Add one item before opening.",
							TimeRequired: 120,
							Status:       domain.LinkStatusPending,
						},
					},
				},
			},
		},
		{
			ID:          2,
			Title:       "Click analysis: banner set B",
			Description: "Record click quality for the rotating banner placement.",
			Type:        domain.TaskTypeClicker,
			AssignedTo:  102,
			AssignedBy:  7,
			Status:      domain.TaskStatusAssigned,
			Priority:    domain.PriorityMedium,
			ExpiryDate:  now.AddDate(0, 0, 5),
			CreatedAt:   now,
			UpdatedAt:   now,
			SessionInstructions: domain.InstructionBlock{
				Title:   "Session setup",
				Content: "Rotate user agents between clicks.",
			},
			TaskInstructions: domain.InstructionBlock{
				Title:   "What to check",
				Content: "A good click lands on the advertiser page within two hops.",
			},
			Subtasks: []domain.Subtask{},
			ClickerTask: &domain.Subtask{
				ID:     1,
				Title:  "Banner set B",
				Type:   domain.TaskTypeClicker,
				Status: domain.SubtaskStatusPending,
				Links: []domain.Link{
					{
						ID:           1,
						DisplayURL:   newMaskedURL(),
						RealURL:      "https://ads.example.net/b/banner-set-b",
						Proxy:        "px-us-1.proxy.internal:8080",
						Title:        "Banner set B rotation",
						TimeRequired: 30,
						Status:       domain.LinkStatusPending,
					},
				},
			},
		},
	}
}
