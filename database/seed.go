package database

import "zakat-chatbot/nlp"

// DefaultFAQs is the starter corpus loaded when the faqs table is empty.
func DefaultFAQs() []nlp.FAQEntry {
	return []nlp.FAQEntry{
		{Question: "Apa itu zakat?", Answer: "Zakat ialah kewajipan agama yang dikenakan ke atas umat Islam untuk menunaikan sebahagian harta kepada golongan yang layak menerimanya.", Category: "general"},
		{Question: "Siapa yang wajib membayar zakat?", Answer: "Setiap Muslim yang cukup syarat seperti cukup haul, nisab, dan memiliki harta yang mencukupi.", Category: "general"},
		{Question: "Bagaimana cara membayar zakat?", Answer: "Anda boleh membayar zakat melalui portal rasmi LZNK, kaunter zakat, atau wakil amil yang dilantik.", Category: "payment"},
		{Question: "Apakah waktu sesuai untuk bayar zakat?", Answer: "Zakat boleh dibayar bila-bila masa, namun paling digalakkan pada akhir tahun haul atau bulan Ramadan.", Category: "payment"},
		{Question: "Berapakah nisab zakat emas?", Answer: "Nisab zakat emas ialah 85 gram atau nilai setara dengan 85 gram emas semasa.", Category: "threshold"},
		{Question: "Berapakah kadar zakat emas?", Answer: "Kadar zakat emas ialah 2.5% daripada nilai emas yang mencukupi nisab.", Category: "threshold"},
		{Question: "Bagaimana mengira zakat perniagaan?", Answer: "Zakat perniagaan dikira 2.5% daripada modal kerja dan keuntungan bersih selepas tolak hutang dan perbelanjaan operasi.", Category: "business"},
		{Question: "Bilakah haul zakat bermula?", Answer: "Haul zakat bermula dari tarikh harta mencapai nisab dan berterusan selama 12 bulan hijrah.", Category: "time-period"},
		{Question: "Apa itu zakat fitrah?", Answer: "Zakat fitrah ialah zakat diri yang wajib ditunaikan oleh setiap Muslim sebelum solat Aidilfitri, mengikut kadar harga beras tempatan.", Category: "zakat-type"},
		{Question: "Bagaimana mengira zakat pendapatan?", Answer: "Zakat pendapatan dikira 2.5% daripada jumlah pendapatan tahunan yang melebihi nisab, selepas ditolak perbelanjaan asas yang dibenarkan.", Category: "zakat-type"},
		{Question: "Apakah zakat simpanan?", Answer: "Zakat simpanan dikenakan 2.5% ke atas baki simpanan terendah dalam tempoh setahun haul apabila mencukupi nisab.", Category: "zakat-type"},
		{Question: "Apa itu LZNK?", Answer: "LZNK (Lembaga Zakat Negeri Kedah) ialah badan berkanun yang bertanggungjawab menguruskan zakat di Negeri Kedah Darul Aman.", Category: "organization"},
		{Question: "Di mana lokasi pejabat LZNK?", Answer: "Pejabat utama LZNK terletak di Alor Setar, Kedah. LZNK juga mempunyai cawangan di seluruh negeri Kedah.", Category: "organization"},
		{Question: "Apakah perkhidmatan yang ditawarkan LZNK?", Answer: "LZNK menawarkan perkhidmatan pengutipan zakat, pengagihan zakat kepada asnaf, pendidikan zakat, dan khidmat nasihat zakat.", Category: "organization"},
		{Question: "Bagaimana cara menghubungi LZNK?", Answer: "Anda boleh menghubungi LZNK melalui telefon, email, atau melawat pejabat LZNK yang terdekat.", Category: "organization"},
		{Question: "Apakah program bantuan LZNK?", Answer: "LZNK menjalankan pelbagai program bantuan untuk asnaf termasuk bantuan pendidikan, perubatan, dan keperluan asas.", Category: "organization"},
		{Question: "Bilakah LZNK ditubuhkan?", Answer: "LZNK ditubuhkan sebagai badan berkanun untuk menguruskan zakat di Negeri Kedah secara sistematik dan profesional.", Category: "organization"},
		{Question: "Siapa yang layak menerima bantuan LZNK?", Answer: "Bantuan LZNK diberikan kepada 8 golongan asnaf yang layak menerima zakat mengikut syariat Islam.", Category: "organization"},
		{Question: "Bagaimana LZNK memastikan ketelusan?", Answer: "LZNK mengamalkan prinsip ketelusan dalam pengurusan zakat dengan laporan kewangan yang boleh diakses oleh orang ramai.", Category: "organization"},
	}
}
