package querydb_test

import (
	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

// heroDB is the normalized test database shared by the package tests.
type heroDB struct {
	Users  collection.Dict[int, string]
	Heroes collection.List[string]
	Powers collection.Array[string]
}

func sampleDB() heroDB {
	return heroDB{
		Users:  collection.NewDict(map[int]string{1: "Batman", 2: "Spiderman"}),
		Heroes: collection.NewList("Batman", "Spiderman"),
		Powers: collection.NewArray("utility belt", "web slinging"),
	}
}

func projectUsers(db heroDB) collection.Dict[int, string] {
	return db.Users
}

func projectHeroes(db heroDB) collection.List[string] {
	return db.Heroes
}

func projectPowers(db heroDB) collection.Array[string] {
	return db.Powers
}
