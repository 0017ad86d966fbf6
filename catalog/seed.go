package catalog

import "oviss-backend/models"

var seedServices = []models.Service{
	{ID: "1", Name: "Signature Cut & Styling", Price: 65.00, Duration: 45},
	{ID: "2", Name: "Digital Perm", Price: 320.00, Duration: 180},
	{ID: "3", Name: "Keratin Smoothing", Price: 450.00, Duration: 120},
	{ID: "4", Name: "Balayage & Toning", Price: 280.00, Duration: 150},
	{ID: "5", Name: "Organic Scalp Therapy", Price: 120.00, Duration: 60},
}

var seedStylists = []models.Stylist{
	{
		ID:             "s1",
		Name:           "Jonathan",
		Title:          "Creative Director",
		Bio:            "Precision cutting and master vision for modern styles.",
		Photo:          "https://images.unsplash.com/photo-1599566150163-29194dcaad36?auto=format&fit=crop&q=80&w=200",
		AvailableSlots: []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"},
	},
	{
		ID:             "s2",
		Name:           "Alice",
		Title:          "Senior Stylist",
		Bio:            "Expert in chemical treatments and contemporary coloring.",
		Photo:          "https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&q=80&w=200",
		AvailableSlots: []string{"09:30", "10:30", "13:30", "14:30", "15:30"},
	},
}

var seedOutlets = []models.Outlet{
	{
		ID:      "o1",
		Name:    "Oviss - Puchong HQ",
		Address: "12-G, Boulevard Puchong, 47100 Selangor",
		Contact: "012-345 6789",
		Photo:   "https://images.unsplash.com/photo-1560066984-138dadb4c035?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:      "o2",
		Name:    "Oviss - Melaka Raya",
		Address: "88, Jalan Merdeka, 75000 Melaka",
		Contact: "019-678 9012",
		Photo:   "https://images.unsplash.com/photo-1521590832167-7bcbfaa6381f?auto=format&fit=crop&q=80&w=800",
	},
}
