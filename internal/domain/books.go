package domain

// BookNames is the catalog of reading material accepted on a daily entry.
var BookNames = []string{
	"Bhagavad-gītā As It Is",
	"Śrīmad-Bhāgavatam",
	"Śrī Caitanya-caritāmṛta",
	"Nectar of Instruction",
	"Kṛṣṇa, the Supreme Personality of Godhead",
	"The Nectar of Devotion",
	"Śrī Īśopaniṣad",
	"The Science of Self-Realization",
	"Beyond Birth and Death",
	"Bhakti: The Art of Eternal Love",
	"Śrī Brahma-saṁhitā",
	"Civilization and Transcendence",
	"The Journey of Self-Discovery",
	"On the Way to Kṛṣṇa",
	"The Path of Perfection",
	"The Perfection of Yoga",
	"Perfect Questions, Perfect Answers",
	"Rāja-vidyā: The King of Knowledge",
	"A Second Chance",
	"Teachings of Lord Caitanya",
	"Teachings of Lord Kapila",
	"Teachings of Queen Kuntī",
	"Light of the Bhāgavata",
	"Chant and be happy",
	"Śrīla Prabhupāda-līlāmṛta",
	"Rāmāyaṇa",
	"Mahābhārata - Retold by Kṛṣṇa Dharma dasa",
	"Other",
}

func IsValidBookName(name string) bool {
	for _, b := range BookNames {
		if b == name {
			return true
		}
	}
	return false
}
