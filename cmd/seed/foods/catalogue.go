package main

import "github.com/dheeraj1922d/Fitkit.ai-Backend/internal/domain"

// catalogue values are per serving
var catalogue = []domain.FoodItem{
	// protein
	{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Chicken Thigh", Calories: 209, Protein: 26, Carbs: 0, Fat: 10.9, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Salmon", Calories: 208, Protein: 20, Carbs: 0, Fat: 13, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Tuna", Calories: 130, Protein: 28, Carbs: 0, Fat: 1.3, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Lean Beef", Calories: 250, Protein: 26, Carbs: 0, Fat: 15, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Pork Chop", Calories: 231, Protein: 25, Carbs: 0, Fat: 14, ServingSize: 100, Unit: "g", Category: "protein"},
	{Name: "Tofu", Calories: 76, Protein: 8, Carbs: 1.9, Fat: 4.8, ServingSize: 100, Unit: "g", Category: "protein"},

	// dairy
	{Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, ServingSize: 100, Unit: "g", Category: "dairy"},
	{Name: "Cottage Cheese", Calories: 98, Protein: 11, Carbs: 3.4, Fat: 4.3, ServingSize: 100, Unit: "g", Category: "dairy"},

	// carbs
	{Name: "White Rice", Calories: 130, Protein: 2.7, Carbs: 28.2, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Brown Rice", Calories: 111, Protein: 2.6, Carbs: 23, Fat: 0.9, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Pasta", Calories: 131, Protein: 5, Carbs: 25, Fat: 1.1, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Bread (Whole Wheat)", Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Oatmeal", Calories: 389, Protein: 16.9, Carbs: 66.3, Fat: 6.9, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Quinoa", Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20.1, Fat: 0.1, ServingSize: 100, Unit: "g", Category: "carbs"},
	{Name: "Potato", Calories: 77, Protein: 2, Carbs: 17, Fat: 0.1, ServingSize: 100, Unit: "g", Category: "carbs"},

	// vegetables
	{Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Carrot", Calories: 41, Protein: 0.9, Carbs: 10, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Tomato", Calories: 18, Protein: 0.9, Carbs: 3.9, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Cucumber", Calories: 15, Protein: 0.7, Carbs: 3.6, Fat: 0.1, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Bell Pepper", Calories: 31, Protein: 1, Carbs: 6, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Lettuce", Calories: 15, Protein: 1.4, Carbs: 2.9, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "vegetables"},
	{Name: "Cauliflower", Calories: 25, Protein: 1.9, Carbs: 5, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "vegetables"},

	// fruits
	{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Orange", Calories: 47, Protein: 0.9, Carbs: 12, Fat: 0.1, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Strawberry", Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Blueberry", Calories: 57, Protein: 0.7, Carbs: 14, Fat: 0.3, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Grapes", Calories: 69, Protein: 0.7, Carbs: 18, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Watermelon", Calories: 30, Protein: 0.6, Carbs: 8, Fat: 0.2, ServingSize: 100, Unit: "g", Category: "fruits"},
	{Name: "Mango", Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, ServingSize: 100, Unit: "g", Category: "fruits"},

	// dairy
	{Name: "Milk (Whole)", Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, ServingSize: 100, Unit: "ml", Category: "dairy"},
	{Name: "Milk (Skim)", Calories: 34, Protein: 3.4, Carbs: 5, Fat: 0.1, ServingSize: 100, Unit: "ml", Category: "dairy"},
	{Name: "Cheese (Cheddar)", Calories: 402, Protein: 25, Carbs: 1.3, Fat: 33, ServingSize: 100, Unit: "g", Category: "dairy"},
	{Name: "Mozzarella", Calories: 280, Protein: 28, Carbs: 3.1, Fat: 17, ServingSize: 100, Unit: "g", Category: "dairy"},
	{Name: "Butter", Calories: 717, Protein: 0.9, Carbs: 0.1, Fat: 81, ServingSize: 100, Unit: "g", Category: "dairy"},

	// snacks
	{Name: "Almonds", Calories: 579, Protein: 21, Carbs: 22, Fat: 50, ServingSize: 100, Unit: "g", Category: "snacks"},
	{Name: "Peanuts", Calories: 567, Protein: 26, Carbs: 16, Fat: 49, ServingSize: 100, Unit: "g", Category: "snacks"},
	{Name: "Walnuts", Calories: 654, Protein: 15, Carbs: 14, Fat: 65, ServingSize: 100, Unit: "g", Category: "snacks"},
	{Name: "Cashews", Calories: 553, Protein: 18, Carbs: 30, Fat: 44, ServingSize: 100, Unit: "g", Category: "snacks"},
	{Name: "Peanut Butter", Calories: 588, Protein: 25, Carbs: 20, Fat: 50, ServingSize: 100, Unit: "g", Category: "snacks"},
	{Name: "Dark Chocolate", Calories: 546, Protein: 4.9, Carbs: 61, Fat: 31, ServingSize: 100, Unit: "g", Category: "snacks"},

	// beverages
	{Name: "Orange Juice", Calories: 45, Protein: 0.7, Carbs: 10, Fat: 0.2, ServingSize: 100, Unit: "ml", Category: "beverages"},
	{Name: "Apple Juice", Calories: 46, Protein: 0.1, Carbs: 11, Fat: 0.1, ServingSize: 100, Unit: "ml", Category: "beverages"},
	{Name: "Coffee (Black)", Calories: 2, Protein: 0.3, Carbs: 0, Fat: 0, ServingSize: 100, Unit: "ml", Category: "beverages"},
	{Name: "Tea (Unsweetened)", Calories: 1, Protein: 0, Carbs: 0.3, Fat: 0, ServingSize: 100, Unit: "ml", Category: "beverages"},
}
