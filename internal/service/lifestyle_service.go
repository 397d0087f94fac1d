package service

// YogaPose 描述一个体式及其练习时长与视频指引
type YogaPose struct {
	Name            string `json:"name"`
	Benefit         string `json:"benefit"`
	DurationSeconds int    `json:"duration_seconds"`
	VideoURL        string `json:"video_url"`
}

// YogaPlan 是某一体质的完整瑜伽方案
type YogaPlan struct {
	Dosha string     `json:"dosha"`
	Focus string     `json:"focus"`
	Tip   string     `json:"tip"`
	Poses []YogaPose `json:"poses"`
}

// DailyRoutineItem 是建议作息中的一条
type DailyRoutineItem struct {
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

// yogaPlans 内置的体质-瑜伽知识库
var yogaPlans = map[string]YogaPlan{
	DoshaVata: {
		Dosha: DoshaVata,
		Focus: "Grounding & Calming",
		Tip:   "Focus on slow, steady movements. Avoid jumping.",
		Poses: []YogaPose{
			{Name: "Vrikshasana (Tree Pose)", Benefit: "Improves balance and focus, grounding excess air.", DurationSeconds: 30, VideoURL: "https://www.youtube.com/watch?v=wdln9qWYloU"},
			{Name: "Balasana (Child's Pose)", Benefit: "Relieves anxiety and mental stress.", DurationSeconds: 60, VideoURL: "https://www.youtube.com/watch?v=eqVMAPM00DM"},
			{Name: "Shavasana (Corpse Pose)", Benefit: "Calms the nervous system completely.", DurationSeconds: 120, VideoURL: "https://www.youtube.com/watch?v=Mc-38vuwE1Y"},
		},
	},
	DoshaPitta: {
		Dosha: DoshaPitta,
		Focus: "Cooling & Relaxing",
		Tip:   "Avoid hot yoga or excessive sweating. Practice in the evening.",
		Poses: []YogaPose{
			{Name: "Chandra Namaskar (Moon Salutation)", Benefit: "Cooling energy, removes body heat.", DurationSeconds: 60, VideoURL: "https://www.youtube.com/watch?v=0RBUP1b87Tk"},
			{Name: "Bhujangasana (Cobra Pose)", Benefit: "Releases tension in the abdomen without overheating.", DurationSeconds: 30, VideoURL: "https://www.youtube.com/watch?v=fOdrW7nf9gw"},
		},
	},
	DoshaKapha: {
		Dosha: DoshaKapha,
		Focus: "Stimulating & Energizing",
		Tip:   "Move quickly. Hold poses for shorter durations but repeat often.",
		Poses: []YogaPose{
			{Name: "Surya Namaskar (Sun Salutation)", Benefit: "Builds heat and burns stagnation.", DurationSeconds: 30, VideoURL: "https://www.youtube.com/watch?v=1xRX1MuoImw"},
			{Name: "Virabhadrasana (Warrior Pose)", Benefit: "Increases metabolism and heart rate.", DurationSeconds: 30, VideoURL: "https://www.youtube.com/watch?v=DoC5mh9GxF4"},
		},
	},
}

// dailyRoutines 内置的体质-作息知识库
var dailyRoutines = map[string][]DailyRoutineItem{
	DoshaVata: {
		{Time: "06:00 AM", Activity: "Wake up. Drink warm water with lemon."},
		{Time: "07:00 AM", Activity: "Oil massage (Abhyanga) with Sesame oil."},
		{Time: "10:00 PM", Activity: "Strict bedtime. Vata needs the most sleep."},
	},
	DoshaPitta: {
		{Time: "05:30 AM", Activity: "Wake up. Cool water splash on eyes."},
		{Time: "07:00 AM", Activity: "Exercise/Yoga during the coolest part of the day."},
		{Time: "11:00 PM", Activity: "Bedtime. Do not work late at night (Fire time)."},
	},
	DoshaKapha: {
		{Time: "05:00 AM", Activity: "Wake up before sunrise (Brahma Muhurta)."},
		{Time: "06:30 AM", Activity: "Vigorous exercise (Cardio/Run) to break stagnation."},
		{Time: "10:00 PM", Activity: "Bedtime. Avoid sleeping during the day."},
	},
}

// LifestyleService 提供按体质划分的瑜伽与作息建议（内置专家知识库）
type LifestyleService struct{}

// NewLifestyleService 构造 LifestyleService
func NewLifestyleService() *LifestyleService {
	return &LifestyleService{}
}

// YogaPlanFor 返回体质对应的瑜伽方案。
// 复合标签取主体质；未知体质回退到 Vata 方案。
func (s *LifestyleService) YogaPlanFor(doshaLabel string) YogaPlan {
	primary := PrimaryDoshaOf(doshaLabel)

	plan, ok := yogaPlans[primary]
	if !ok {
		plan = yogaPlans[DoshaVata]
	}
	return plan
}

// DailyRoutineFor 返回体质对应的建议作息
func (s *LifestyleService) DailyRoutineFor(doshaLabel string) []DailyRoutineItem {
	primary := PrimaryDoshaOf(doshaLabel)

	routine, ok := dailyRoutines[primary]
	if !ok {
		routine = dailyRoutines[DoshaVata]
	}
	return routine
}
