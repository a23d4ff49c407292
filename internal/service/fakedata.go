package service

import (
	"fmt"
	"math/rand"
	"strings"
)

// fakeSource выдаёт правдоподобные имена, email и тексты из
// фиксированных пулов. Все розыгрыши читают общий seeded *rand.Rand,
// поэтому при одинаковом seed последовательность значений
// воспроизводится полностью.
type fakeSource struct {
	rng *rand.Rand
}

func newFakeSource(rng *rand.Rand) *fakeSource {
	return &fakeSource{rng: rng}
}

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Sandra", "Mark", "Margaret", "Donald", "Ashley",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "outlook.com", "hotmail.com", "proton.me"}

var companyWords = []string{
	"Nova", "Prime", "Global", "Urban", "Bright", "Swift", "Apex", "Vertex",
	"Stellar", "Pacific", "Atlas", "Summit", "Crystal", "Golden", "Silver", "Cedar",
}

var companySuffixes = []string{"Trading", "Goods", "Supply", "Retail", "Commerce", "Market", "Store", "Group"}

var resolutionTexts = []string{
	"Refund issued to the buyer after investigation.",
	"Seller provided a replacement item, buyer confirmed receipt.",
	"Partial refund agreed by both parties.",
	"Dispute closed in favor of the seller, evidence provided.",
	"Buyer withdrew the claim after clarification.",
	"Case escalated and resolved by the support team.",
	"Compensation voucher issued to the buyer.",
}

// FirstName возвращает случайное имя из пула.
func (f *fakeSource) FirstName() string {
	return firstNames[f.rng.Intn(len(firstNames))]
}

// LastName возвращает случайную фамилию из пула.
func (f *fakeSource) LastName() string {
	return lastNames[f.rng.Intn(len(lastNames))]
}

// Email собирает адрес из имени, случайного числа и домена.
func (f *fakeSource) Email(firstName, lastName string) string {
	return fmt.Sprintf("%s.%s.%d@%s",
		strings.ToLower(firstName), strings.ToLower(lastName),
		f.rng.Intn(10000), emailDomains[f.rng.Intn(len(emailDomains))])
}

// CompanyName собирает название компании из двух слов и суффикса.
func (f *fakeSource) CompanyName() string {
	return fmt.Sprintf("%s %s %s",
		companyWords[f.rng.Intn(len(companyWords))],
		companyWords[f.rng.Intn(len(companyWords))],
		companySuffixes[f.rng.Intn(len(companySuffixes))])
}

// ResolutionText возвращает текст резолюции спора из пула.
func (f *fakeSource) ResolutionText() string {
	return resolutionTexts[f.rng.Intn(len(resolutionTexts))]
}
