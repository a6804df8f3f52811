package reference

// A packaged subset of the player table covering active stars and frequently
// queried historical players. The full table upstream runs to several
// thousand entries; callers needing all of them construct their own Source
// from a CommonAllPlayers pull.
var knownPlayers = []Player{
	{ID: 2544, Name: "LeBron James", FirstSeason: 2003, LastSeason: 2024},
	{ID: 201939, Name: "Stephen Curry", FirstSeason: 2009, LastSeason: 2024},
	{ID: 201142, Name: "Kevin Durant", FirstSeason: 2007, LastSeason: 2024},
	{ID: 203507, Name: "Giannis Antetokounmpo", FirstSeason: 2013, LastSeason: 2024},
	{ID: 203999, Name: "Nikola Jokic", FirstSeason: 2015, LastSeason: 2024},
	{ID: 1629029, Name: "Luka Doncic", FirstSeason: 2018, LastSeason: 2024},
	{ID: 1628369, Name: "Jayson Tatum", FirstSeason: 2017, LastSeason: 2024},
	{ID: 203954, Name: "Joel Embiid", FirstSeason: 2014, LastSeason: 2024},
	{ID: 1628983, Name: "Shai Gilgeous-Alexander", FirstSeason: 2018, LastSeason: 2024},
	{ID: 1630162, Name: "Anthony Edwards", FirstSeason: 2020, LastSeason: 2024},
	{ID: 1641705, Name: "Victor Wembanyama", FirstSeason: 2023, LastSeason: 2024},
	{ID: 203076, Name: "Anthony Davis", FirstSeason: 2012, LastSeason: 2024},
	{ID: 201566, Name: "Russell Westbrook", FirstSeason: 2008, LastSeason: 2024},
	{ID: 201935, Name: "James Harden", FirstSeason: 2009, LastSeason: 2024},
	{ID: 202681, Name: "Kyrie Irving", FirstSeason: 2011, LastSeason: 2024},
	{ID: 202695, Name: "Kawhi Leonard", FirstSeason: 2011, LastSeason: 2024},
	{ID: 203081, Name: "Damian Lillard", FirstSeason: 2012, LastSeason: 2024},
	{ID: 1627759, Name: "Jaylen Brown", FirstSeason: 2016, LastSeason: 2024},
	{ID: 1628378, Name: "Donovan Mitchell", FirstSeason: 2017, LastSeason: 2024},
	{ID: 1628381, Name: "De'Aaron Fox", FirstSeason: 2017, LastSeason: 2024},
	{ID: 1628973, Name: "Jalen Brunson", FirstSeason: 2018, LastSeason: 2024},
	{ID: 1629027, Name: "Trae Young", FirstSeason: 2018, LastSeason: 2024},
	{ID: 1629627, Name: "Zion Williamson", FirstSeason: 2019, LastSeason: 2024},
	{ID: 1629630, Name: "Ja Morant", FirstSeason: 2019, LastSeason: 2024},
	{ID: 1630163, Name: "LaMelo Ball", FirstSeason: 2020, LastSeason: 2024},
	{ID: 1630169, Name: "Tyrese Haliburton", FirstSeason: 2020, LastSeason: 2024},
	{ID: 1630578, Name: "Alperen Sengun", FirstSeason: 2021, LastSeason: 2024},
	{ID: 1631094, Name: "Paolo Banchero", FirstSeason: 2022, LastSeason: 2024},
	{ID: 1626164, Name: "Devin Booker", FirstSeason: 2015, LastSeason: 2024},
	{ID: 1626157, Name: "Karl-Anthony Towns", FirstSeason: 2015, LastSeason: 2024},
	{ID: 1626156, Name: "D'Angelo Russell", FirstSeason: 2015, LastSeason: 2024},
	{ID: 1627734, Name: "Domantas Sabonis", FirstSeason: 2016, LastSeason: 2024},
	{ID: 1627783, Name: "Pascal Siakam", FirstSeason: 2016, LastSeason: 2024},
	{ID: 1628368, Name: "Bam Adebayo", FirstSeason: 2017, LastSeason: 2024},
	{ID: 1628389, Name: "Lauri Markkanen", FirstSeason: 2017, LastSeason: 2024},
	{ID: 202331, Name: "Paul George", FirstSeason: 2010, LastSeason: 2024},
	{ID: 202326, Name: "DeMarcus Cousins", FirstSeason: 2010, LastSeason: 2021},
	{ID: 202710, Name: "Jimmy Butler", FirstSeason: 2011, LastSeason: 2024},
	{ID: 203897, Name: "Zach LaVine", FirstSeason: 2014, LastSeason: 2024},
	{ID: 203944, Name: "Julius Randle", FirstSeason: 2014, LastSeason: 2024},
	{ID: 977, Name: "Kobe Bryant", FirstSeason: 1996, LastSeason: 2015},
	{ID: 893, Name: "Michael Jordan", FirstSeason: 1984, LastSeason: 2002},
	{ID: 1495, Name: "Tim Duncan", FirstSeason: 1997, LastSeason: 2015},
	{ID: 406, Name: "Shaquille O'Neal", FirstSeason: 1992, LastSeason: 2010},
	{ID: 1717, Name: "Dirk Nowitzki", FirstSeason: 1998, LastSeason: 2018},
	{ID: 2546, Name: "Carmelo Anthony", FirstSeason: 2003, LastSeason: 2021},
	{ID: 2547, Name: "Chris Bosh", FirstSeason: 2003, LastSeason: 2015},
	{ID: 101108, Name: "Chris Paul", FirstSeason: 2005, LastSeason: 2024},
	{ID: 201144, Name: "Mike Conley", FirstSeason: 2007, LastSeason: 2024},
	{ID: 200746, Name: "LaMarcus Aldridge", FirstSeason: 2006, LastSeason: 2020},
}
