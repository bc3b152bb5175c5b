package minigameService

// Question is a single trivia prompt with four options, one correct.
type Question struct {
	Text    string
	Answers []string
	Correct int
}

// questionBank is the static trivia pool rounds draw from uniformly.
var questionBank = []Question{
	{Text: "In what year was PSG founded?", Answers: []string{"1970", "1965", "1975", "1980"}, Correct: 0},
	{Text: "Which player holds the all-time PSG goal record?", Answers: []string{"Zlatan Ibrahimovic", "Edinson Cavani", "Kylian Mbappe", "Pauleta"}, Correct: 1},
	{Text: "What is PSG's nickname?", Answers: []string{"Les Rouges", "Les Parisiens", "Les Bleus", "Les Princes"}, Correct: 1},
	{Text: "In what year did PSG reach their first Champions League final?", Answers: []string{"2015", "2018", "2020", "2021"}, Correct: 2},
	{Text: "What is the name of PSG's stadium?", Answers: []string{"Stade de France", "Parc des Princes", "Stade Velodrome", "Allianz Riviera"}, Correct: 1},
	{Text: "Who is PSG's current president?", Answers: []string{"Jean-Michel Aulas", "Nasser Al-Khelaifi", "Frank McCourt", "Vincent Labrune"}, Correct: 1},
	{Text: "Which legendary Brazilian wore the PSG shirt?", Answers: []string{"Ronaldo", "Ronaldinho", "Rivaldo", "Romario"}, Correct: 1},
	{Text: "What is the capacity of the Parc des Princes?", Answers: []string{"45,000", "48,000", "50,000", "55,000"}, Correct: 1},
	{Text: "In what year did Qatar buy PSG?", Answers: []string{"2009", "2011", "2013", "2015"}, Correct: 1},
	{Text: "Who is PSG's historic rival?", Answers: []string{"Lyon", "Marseille", "Monaco", "Lille"}, Correct: 1},
	{Text: "Which Italian goalkeeper played for PSG?", Answers: []string{"Gianluigi Buffon", "Gianluigi Donnarumma", "Salvatore Sirigu", "Mattia Perin"}, Correct: 1},
	{Text: "What is PSG's motto?", Answers: []string{"Allez Paris", "Ici c'est Paris", "Paris est magique", "Ville Lumiere"}, Correct: 1},
	{Text: "In what year did Neymar join PSG?", Answers: []string{"2016", "2017", "2018", "2019"}, Correct: 1},
	{Text: "How much did Neymar's transfer to PSG cost?", Answers: []string{"200 million", "222 million", "250 million", "300 million"}, Correct: 1},
	{Text: "Which country does Marquinhos play for?", Answers: []string{"Argentina", "Brazil", "Portugal", "Spain"}, Correct: 1},
}
