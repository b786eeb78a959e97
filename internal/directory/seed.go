package directory

import "github.com/EO-DataHub/eodhp-directory-services/models"

// SeedUsers returns a fresh copy of the sample directory.
func SeedUsers() []models.UserRecord {
	return []models.UserRecord{
		{
			ID:      1,
			Name:    "Gerald Stiedemann",
			Company: models.Company{Name: "Metz and Sons"},
			Email:   "Roman66@gmail.com",
			Address: "8060 Auer Estate",
			State:   "Pennsylvania",
			Country: "Guam",
			Phone:   "1-646-355-4388",
			Photo:   "https://images.unsplash.com/photo-1506744038136-46273834b3fb?w=400&h=200&fit=crop",
		},
		{
			ID:      2,
			Name:    "Heidi Faker",
			Company: models.Company{Name: "Shanahan - Cartwright"},
			Email:   "Alta.Hand14@gmail.com",
			Address: "3996 Sunny Fields",
			State:   "Hawaii",
			Country: "Pitcairn Islands",
			Phone:   "(345) 369-3735 x1278",
			Photo:   "https://images.unsplash.com/photo-1447752875215-b2761acb3c5d?w=400&h=200&fit=crop",
		},
		{
			ID:      3,
			Name:    "Sheila Rau",
			Company: models.Company{Name: "Collier - Mayer"},
			Email:   "Lonnie_Lehner@hotmail.com",
			Address: "33256 Erwin Forges",
			State:   "Wyoming",
			Country: "Tajikistan",
			Phone:   "1-466-611-1346 x8588",
			Photo:   "https://images.unsplash.com/photo-1470071459604-3b5ec3a7fe05?w=400&h=200&fit=crop",
		},
		{
			ID:      4,
			Name:    "Brooke Larson",
			Company: models.Company{Name: "Rau - Nitzsche"},
			Email:   "Joanie.Frami25@gmail.com",
			Address: "2182 Gleichner Landing",
			State:   "Alabama",
			Country: "United States of America",
			Phone:   "420.484.6085 x0002",
			Photo:   "https://images.unsplash.com/photo-1426604966848-d7adac402bff?w=400&h=200&fit=crop",
		},
		{
			ID:      5,
			Name:    "Geovany Schowalter",
			Company: models.Company{Name: "Ratke, Koepp and Mosciski"},
			Email:   "Paul_Zieme@hotmail.com",
			Address: "4347 Rempel Keys",
			State:   "Arizona",
			Country: "Guadeloupe",
			Phone:   "697.883.9259 x9902",
			Photo:   "https://images.unsplash.com/photo-1433086966358-54859d0ed716?w=400&h=200&fit=crop",
		},
		{
			ID:      6,
			Name:    "Clint Feil",
			Company: models.Company{Name: "Jast Group"},
			Email:   "Koby_Towne@yahoo.com",
			Address: "5778 Willms Ville",
			State:   "California",
			Country: "Croatia",
			Phone:   "1-236-348-3545 x39048",
			Photo:   "https://images.unsplash.com/photo-1472214103451-9374bd1c798e?w=400&h=200&fit=crop",
		},
		{
			ID:      7,
			Name:    "Bernard Raynor",
			Company: models.Company{Name: "Swaniawski, Durgan and King"},
			Email:   "Broderick_Thiel99@yahoo.com",
			Address: "72926 Spinka Curve",
			State:   "Rhode Island",
			Country: "Turks and Caicos Islands",
			Phone:   "1-875-684-0116 x7501",
			Photo:   "https://images.unsplash.com/photo-1465146344425-f00d5f5c8f07?w=400&h=200&fit=crop",
		},
		{
			ID:      8,
			Name:    "Mittie Dickens",
			Company: models.Company{Name: "Schiller, DuBuque and Wilderman"},
			Email:   "Maryam_Franecki@gmail.com",
			Address: "525 Mosciski Flat",
			State:   "Oregon",
			Country: "Pakistan",
			Phone:   "816-511-0683 x1358",
			Photo:   "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?w=400&h=200&fit=crop",
		},
		{
			ID:      9,
			Name:    "Petra Abshire",
			Company: models.Company{Name: "Aufderhar - Kozey"},
			Email:   "Laila_Konopelski52@gmail.com",
			Address: "35632 Walsh Isle",
			State:   "California",
			Country: "Azerbaijan",
			Phone:   "384.819.7325",
			Photo:   "https://images.unsplash.com/photo-1476231682828-37e571bc172f?w=400&h=200&fit=crop",
		},
		{
			ID:      10,
			Name:    "Eveline Nikolaus",
			Company: models.Company{Name: "Gottlieb - Bednar"},
			Email:   "Haylee_Schaden@gmail.com",
			Address: "7041 Dee Shores",
			State:   "New Mexico",
			Country: "Martinique",
			Phone:   "(564) 450-2135 x888",
			Photo:   "https://images.unsplash.com/photo-1418065460487-3e41a6c84dc5?w=400&h=200&fit=crop",
		},
	}
}
