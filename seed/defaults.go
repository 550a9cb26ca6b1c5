package seed

// DefaultDataset returns the built-in quizzes used when no external dataset
// is available, so a fresh install is usable out of the box.
func DefaultDataset() *Dataset {
	return &Dataset{
		Quizzes: []QuizDefinition{
			{
				Title: "Programming Fundamentals",
				Questions: []QuestionDefinition{
					{
						Text: "What does HTML stand for?",
						Options: []OptionDefinition{
							{Text: "Hyper Text Markup Language", IsCorrect: true},
							{Text: "High Tech Modern Language"},
							{Text: "Home Tool Markup Language"},
							{Text: "Hyperlinks and Text Markup Language"},
						},
					},
					{
						Text: "Which programming language is known as the 'language of the web'?",
						Options: []OptionDefinition{
							{Text: "Python"},
							{Text: "JavaScript", IsCorrect: true},
							{Text: "Java"},
							{Text: "C++"},
						},
					},
					{
						Text: "What is the purpose of CSS?",
						Options: []OptionDefinition{
							{Text: "To structure web pages"},
							{Text: "To style web pages", IsCorrect: true},
							{Text: "To add interactivity"},
							{Text: "To manage databases"},
						},
					},
					{
						Text: "Which symbol is used for single-line comments in Python?",
						Options: []OptionDefinition{
							{Text: "//"},
							{Text: "#", IsCorrect: true},
							{Text: "/*"},
							{Text: "--"},
						},
					},
					{
						Text: "What does API stand for?",
						Options: []OptionDefinition{
							{Text: "Application Programming Interface", IsCorrect: true},
							{Text: "Advanced Programming Integration"},
							{Text: "Automated Program Interaction"},
							{Text: "Application Process Integration"},
						},
					},
				},
			},
			{
				Title: "JavaScript Basics",
				Questions: []QuestionDefinition{
					{
						Text: "Which keyword is used to declare a variable in JavaScript?",
						Options: []OptionDefinition{
							{Text: "var", IsCorrect: true},
							{Text: "int"},
							{Text: "string"},
							{Text: "define"},
						},
					},
					{
						Text: "What method is used to add an element to the end of an array?",
						Options: []OptionDefinition{
							{Text: "append()"},
							{Text: "push()", IsCorrect: true},
							{Text: "add()"},
							{Text: "insert()"},
						},
					},
					{
						Text: "Which operator is used for strict equality in JavaScript?",
						Options: []OptionDefinition{
							{Text: "=="},
							{Text: "===", IsCorrect: true},
							{Text: "="},
							{Text: "!="},
						},
					},
					{
						Text: "What does 'NaN' stand for?",
						Options: []OptionDefinition{
							{Text: "Not a Number", IsCorrect: true},
							{Text: "Null and None"},
							{Text: "New Array Node"},
							{Text: "Negative and Null"},
						},
					},
				},
			},
			{
				Title: "Database Concepts",
				Questions: []QuestionDefinition{
					{
						Text: "What does SQL stand for?",
						Options: []OptionDefinition{
							{Text: "Structured Query Language", IsCorrect: true},
							{Text: "Simple Question Language"},
							{Text: "Standard Query Logic"},
							{Text: "System Query Language"},
						},
					},
					{
						Text: "Which SQL command is used to retrieve data from a database?",
						Options: []OptionDefinition{
							{Text: "GET"},
							{Text: "FETCH"},
							{Text: "SELECT", IsCorrect: true},
							{Text: "RETRIEVE"},
						},
					},
					{
						Text: "What is a primary key?",
						Options: []OptionDefinition{
							{Text: "A unique identifier for a record", IsCorrect: true},
							{Text: "The first column in a table"},
							{Text: "A password for the database"},
							{Text: "The main table in a database"},
						},
					},
				},
			},
			{
				Title: "General Knowledge",
				Questions: []QuestionDefinition{
					{
						Text: "What is the capital of France?",
						Options: []OptionDefinition{
							{Text: "London"},
							{Text: "Berlin"},
							{Text: "Paris", IsCorrect: true},
							{Text: "Madrid"},
						},
					},
					{
						Text: "Which planet is known as the Red Planet?",
						Options: []OptionDefinition{
							{Text: "Venus"},
							{Text: "Mars", IsCorrect: true},
							{Text: "Jupiter"},
							{Text: "Saturn"},
						},
					},
					{
						Text: "Who painted the Mona Lisa?",
						Options: []OptionDefinition{
							{Text: "Vincent van Gogh"},
							{Text: "Pablo Picasso"},
							{Text: "Leonardo da Vinci", IsCorrect: true},
							{Text: "Michelangelo"},
						},
					},
					{
						Text: "What is the largest ocean on Earth?",
						Options: []OptionDefinition{
							{Text: "Atlantic Ocean"},
							{Text: "Indian Ocean"},
							{Text: "Arctic Ocean"},
							{Text: "Pacific Ocean", IsCorrect: true},
						},
					},
					{
						Text: "In which year did World War II end?",
						Options: []OptionDefinition{
							{Text: "1943"},
							{Text: "1945", IsCorrect: true},
							{Text: "1947"},
							{Text: "1950"},
						},
					},
				},
			},
		},
	}
}
