package dsp

// goldenSums holds an FNV-1a hash of the packed coefficients of each
// (size, type) pair over goldenInput, computed by an independent build of
// the reference encoder's forward transforms.
var goldenSums = [NumTxSizes][NumTxTypes]uint64{
	{ // 4x4
		0x066b97edf32337e5,
		0x5fd587faa95da0b7,
		0x58fdb57e6b4f9170,
		0xa42e22f071971dfb,
		0xcbd10bbdcd787b07,
		0xcf04bc9e0ae0593a,
		0x76de483a30092afb,
		0xc10d7600bae6b785,
		0xa8c5a653d3943788,
		0x898ec91466cac8ac,
		0x775ac0721c7c059b,
		0x891277053d2b3e78,
		0xeffb164d3d7f411f,
		0x27e5c725064f90a5,
		0x1a538d419dd13195,
		0xd6b41f5d0eb47d40,
	},
	{ // 8x8
		0xbcb58350e5e8cfd0,
		0xa1a2160684c47d54,
		0x1a30b43b5d68240d,
		0x1e93d8ccde982825,
		0x0cbe6313c21204a0,
		0xa4da6c544bf146f9,
		0x4919f83b23123255,
		0xfc1e13c4da7beeef,
		0x8f8557c8151f66e0,
		0xae328524c596a8c5,
		0x6383b77c724f7fd0,
		0x4d6e1b3a7cdc7348,
		0xbdbb39525f98f814,
		0x962cafe250f64627,
		0x1d596b8a3d7c246c,
		0x9e26ec7180c3599c,
	},
	{ // 16x16
		0x7fb876b17cd2c34d,
		0xbae2ad76647f8ba9,
		0x2c965c21c5ee395e,
		0x24819a3344eda71f,
		0xde79ab9a87917c3a,
		0x8ae3749e5efc8d65,
		0xb24a99c4850ccf07,
		0xbe888c438e88c5f6,
		0x5643a2c8c980590b,
		0x93b7b676848773a7,
		0x7ca09c6ff2cfa112,
		0xa3efc623f28f8b96,
		0xba3a834df14bc941,
		0x99ff9c1455d2c065,
		0xd5a87d94aaab9945,
		0x7919f31bbd949955,
	},
	{ // 32x32
		0xf0d03ff54819b182,
		0x18d84ee0a8a0dd9e,
		0xe36f6578d58f149b,
		0x689a441352f45c2e,
		0xcfdc799a530bd8bd,
		0x5031ef1fa592f082,
		0xbf554425575f0831,
		0x8e53f364a3d81f97,
		0x599b7eb8bde74b58,
		0xd794e21f7f94a529,
		0xd73084bb6d2b39c1,
		0x36fe90b89d088fc5,
		0xf93a03c8537d1f75,
		0xe7fdcbb0b7dab8db,
		0x32a47420d2e6f645,
		0x2c293b7ec71c122c,
	},
	{ // 64x64
		0x26e0a6904534d2c5,
		0xc05792028644d5aa,
		0x80b049ab41ca86b1,
		0x93c7ed510d5915af,
		0x35bd79bbd95b3f2a,
		0xde889e65954c1c57,
		0x218962e7fdc8fcaa,
		0xc13e5dfd8b5c0119,
		0x67648678dde1c917,
		0xa8cca55b753a70da,
		0xa4b54649303d87b4,
		0x83cce2d3f97c87bb,
		0xe356c99f8ddb9327,
		0x63ab52b98cb48f14,
		0xb04ab6b681f822c0,
		0x8595cbf24474d5c5,
	},
	{ // 4x8
		0x46bf1e74032c8efc,
		0x3f07b6d060f59193,
		0xb654a46a89aa1b40,
		0xf09e9dd943b90783,
		0x5d53e011c11b020e,
		0x7e70de4bb329006d,
		0x71484bc35fa88c9f,
		0xbb86422040268a7d,
		0xbbbaa7d62c3503a8,
		0xe92710a89f9a3306,
		0xa6c97fc05ddf0767,
		0xfa67705b2d46cce3,
		0x9a3b7367e4a17481,
		0x472ad840a2051935,
		0xb412465b914b4447,
		0xace5653a012f807c,
	},
	{ // 8x4
		0x98d5a6ad32056b84,
		0x33ee8a86e235c95b,
		0xa6a170dd13aa4620,
		0x07d94ec08484748c,
		0x0c90ad423245d354,
		0xa821f3425e96e008,
		0x0ed34d1d74c3be9f,
		0x0b373e6cb37b2c84,
		0x53c3f4322dec5407,
		0x86b390af4ce66e15,
		0x9bf657f91a156404,
		0x1714a39d03c98179,
		0xc890d5b69152c999,
		0x0845b5e18c5f4407,
		0x0a572aae2b87ce52,
		0x118384b5e7a3874a,
	},
	{ // 8x16
		0xca5bc1e4a46f633f,
		0x42311085797988b6,
		0xd5b651d9bea5d428,
		0xa516e48ab47d6a62,
		0xe39305644f9743b7,
		0x59ae617bec63c67c,
		0xbe798e3ea9478dd4,
		0x6bd4d3e8ee43e039,
		0x6784dbcd2cc0fd25,
		0xfcd14d02789cfb1b,
		0x6daf06c98a2c869b,
		0xfa50f66a6bcd9f58,
		0xb14716625bf61530,
		0x34d3557aea249142,
		0xa2e9e3a9cdc67fa2,
		0xd1aebfc2a0d161d0,
	},
	{ // 16x8
		0x68485b204209778d,
		0x08ed6bcbcdab1100,
		0x0403658d5bda267d,
		0xe35494ac04872314,
		0x354a48fc5e9957e1,
		0xb6c7a3effc6f18b8,
		0x76a2108551e44333,
		0xf7845f9f5db1fb8e,
		0x06d5fe2d3ad83a0e,
		0x4f12a3d76bb2882d,
		0x8f3f1b2490250e6a,
		0xfbcdf6597bc60b1c,
		0x815a0db587c4f824,
		0x1dc333d0c7923ffd,
		0x358e3bad98ecf16a,
		0xdabb989041e97821,
	},
	{ // 16x32
		0x92f444d759ca00ca,
		0x1fb0ad7e2d68b0c6,
		0x7651008106be5509,
		0x601f7c7d95431c1a,
		0x12ff7988304abcfb,
		0xc2f0270da89047ef,
		0x01421d985a95e060,
		0xadb1804c3a907d4d,
		0x1c868238271f8dbf,
		0x90fb1b2247729c0d,
		0xb65b4ab62603c65d,
		0x1acdd624a4771de1,
		0xed5a68150fb97293,
		0x598a620717a6a8f1,
		0xbc3d11bd1dbcf597,
		0x703957774a0d553d,
	},
	{ // 32x16
		0x913a6758bef7ef91,
		0x239cabb5962c40ee,
		0x89e10068b4d1f9b7,
		0x489c49c805ffb85c,
		0xfb38a3ca22b35284,
		0xd3fe1f9185670694,
		0x48412b833a3c70bd,
		0x4b416f1dc7b133ca,
		0x2480c2f7fe8126df,
		0x3854baf1017f89b9,
		0xdebe606bab0cfaa1,
		0x74668bc03ea565ce,
		0x657ba005fac1dd79,
		0xd77a12c4b367c55e,
		0xe9ca9defc1ff6be1,
		0x6b74c6ea2e70589c,
	},
	{ // 32x64
		0x14a6d507dbfcde93,
		0x5c5022d59dcdafb0,
		0x57fec5b415e7a62c,
		0xeb0a51ed967848fa,
		0xa95b01d2ada0aae0,
		0xff28e4174b4a0cfb,
		0xd1c6ab506ce1ac21,
		0x880e742011e81aee,
		0x093362705df821ef,
		0x8416b4d114cb3d47,
		0xbc36f4f13812d4d6,
		0x5b1326c00fd0ffca,
		0x2bccda8f5d1c8d65,
		0xc4da062c3bb8c592,
		0xccd589ba5ed97ad8,
		0x6f7b4926b0fcac1e,
	},
	{ // 64x32
		0x3c04d2bae5fe4457,
		0x9f4161b51643ebf7,
		0x3350b4961e53172e,
		0x83ee9b39f5570d29,
		0xa22296396ab7c772,
		0xd0280bc18eb05421,
		0x507c2c7327370095,
		0x379ac8971ace9841,
		0x36b259d6cbe818b1,
		0x91fcc60a9e178ba1,
		0xb1dc663f4b41c7cb,
		0xcbe1b8b5c3e5c58e,
		0xe00407b873688923,
		0xdb550e55fe655e54,
		0x3c477de221dd59d9,
		0x809725bd3af4ad16,
	},
	{ // 4x16
		0x42ee628c4cb5e110,
		0x8146f9075271e3a6,
		0x8ac560980a031263,
		0x4e46f07e1dfeaeb0,
		0x324f4d0d5e2c1843,
		0x6511bab13f0be5ac,
		0x5b3d16ff7e80d89d,
		0x4c649f2158f61ec4,
		0x5b6ce0869a84360c,
		0xd4dc3020aaba3764,
		0x69a1575b61e8839a,
		0xc24aac8190d7e230,
		0x363a3bfee1886765,
		0xa62aa3122a094acb,
		0x840095fb492c5900,
		0xcd813327c4b42aed,
	},
	{ // 16x4
		0x44bf12521bba7da5,
		0x52bd7bf605dd6556,
		0xdc1ae7bea22cf15f,
		0xa2ea8fad73b1750d,
		0x2ff9aad2b7c16306,
		0xd0dab4e1845d1322,
		0x736330ee386c00fd,
		0xd302e13f151b8d56,
		0x5d41cca5562ee0c3,
		0xa9735e95b9470dbe,
		0x968f799b15ac54c6,
		0xe7680b983a09080c,
		0x3fb3bf022633b24e,
		0xdc984b42a827eb16,
		0xadc415a90cfc6192,
		0xbc465d256c50f085,
	},
	{ // 8x32
		0x0c209545a77c1a36,
		0x9efd2456e4e57e7d,
		0xc65a5a64a3b92f99,
		0x653c34a81775ce25,
		0x8683f5f72214740e,
		0x10151497364d2b08,
		0x4067c6cf341a1bc8,
		0x8f8b2af230bf38f4,
		0x0efaba3d9eddf38b,
		0x5d59887abcbb8d45,
		0x25a7663f0d535950,
		0xf0871e4e3bf44982,
		0x6624d4a5cd625add,
		0x2fc77216ad31d189,
		0xaf61e201db3d9266,
		0x81b418ef651f5655,
	},
	{ // 32x8
		0xfd5d7ba621160e5f,
		0x4880c3a016c379eb,
		0x47bd6b5713112a43,
		0x99f781d5c74adc7d,
		0x87e296c36a6be1cc,
		0x757ced89d6089979,
		0xa9bfb5825635b66d,
		0xdcb735831690b631,
		0xe8c1de66c87199e3,
		0xdf9a50ebb0ab07f5,
		0x9d5958620e7b05a1,
		0xc10b5762576280b5,
		0x0328bc2d018bd694,
		0xbb69bad444b47190,
		0x82efceb4044d1df7,
		0xe63e7f133bc76d08,
	},
	{ // 16x64
		0xf9854d01d11624cf,
		0xc9442e419015a66f,
		0x6e03e8d10215fd44,
		0x0579b63289c0e092,
		0xe7a70d1c6ef78c4c,
		0x5df282340639e59a,
		0x607c4f7ac43d35cd,
		0xd4014a255a2da655,
		0xee7d90114d659d61,
		0x18457b89767e36ef,
		0x5113963035cf4fb3,
		0x2b94e815b359c9d3,
		0x8a978fa869e1c84d,
		0x20b043218281a427,
		0x030dcc20f6621324,
		0xb131b9a40fcb3247,
	},
	{ // 64x16
		0x9104d36e96a52318,
		0xcb1aaaa4d5d04b49,
		0x6150f3c5f284d65d,
		0x69e34eaf6a98c00e,
		0x55b25d6dc9f5aa7e,
		0xfff684858dee82a9,
		0x6073d1d39ed422ca,
		0x2a082e5a198d27f7,
		0x4bee7f8384612f43,
		0xe42442d72182e22c,
		0x6512d87071393b20,
		0x544fb5dbe16e88e8,
		0x19d084333e61c7f5,
		0xceb4b57cdd32673f,
		0x59192f9b360ca548,
		0x42089686deca3f82,
	},
}
